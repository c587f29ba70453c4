package domain

import (
	"fmt"
	"strings"
)

// InvoiceStatus is the billing status of an invoice.
type InvoiceStatus string

const (
	StatusUnpaid   InvoiceStatus = "Unpaid"
	StatusPartial  InvoiceStatus = "Partial"
	StatusDisputed InvoiceStatus = "Disputed"
	StatusPaid     InvoiceStatus = "Paid"
)

// InvoiceStatuses lists every invoice status in display order.
var InvoiceStatuses = []InvoiceStatus{StatusUnpaid, StatusPartial, StatusDisputed, StatusPaid}

// Valid reports whether s is a known invoice status.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusUnpaid, StatusPartial, StatusDisputed, StatusPaid:
		return true
	}
	return false
}

// ParseInvoiceStatus parses a status case-insensitively.
func ParseInvoiceStatus(raw string) (InvoiceStatus, error) {
	for _, s := range InvoiceStatuses {
		if strings.EqualFold(string(s), strings.TrimSpace(raw)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown invoice status %q", raw)
}

func (s *InvoiceStatus) UnmarshalText(b []byte) error {
	parsed, err := ParseInvoiceStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// HoldingStatus describes who holds the payment check and at which stage.
type HoldingStatus string

const (
	HoldingNone             HoldingStatus = "None"
	HoldingNeedsEndorsement HoldingStatus = "Needs endorsement"
	HoldingTheyHaveCheck    HoldingStatus = "They have check"
	HoldingPAHasCheck       HoldingStatus = "PA has check"
	HoldingCustomerHasCheck HoldingStatus = "Customer has check"
	HoldingOtherHasCheck    HoldingStatus = "Other has check"
)

// HoldingStatuses lists every holding status in display order.
var HoldingStatuses = []HoldingStatus{
	HoldingNone,
	HoldingNeedsEndorsement,
	HoldingTheyHaveCheck,
	HoldingPAHasCheck,
	HoldingCustomerHasCheck,
	HoldingOtherHasCheck,
}

func (h HoldingStatus) Valid() bool {
	switch h {
	case HoldingNone, HoldingNeedsEndorsement, HoldingTheyHaveCheck,
		HoldingPAHasCheck, HoldingCustomerHasCheck, HoldingOtherHasCheck:
		return true
	}
	return false
}

// HasCheck reports whether some party is holding a check for the invoice.
func (h HoldingStatus) HasCheck() bool {
	switch h {
	case HoldingTheyHaveCheck, HoldingPAHasCheck, HoldingCustomerHasCheck, HoldingOtherHasCheck:
		return true
	case HoldingNone, HoldingNeedsEndorsement:
		return false
	}
	return false
}

// TracksSubStatus reports whether the holding status carries a HoldingSubStatus.
// Only "They have check" does.
func (h HoldingStatus) TracksSubStatus() bool {
	return h == HoldingTheyHaveCheck
}

// ParseHoldingStatus parses a holding status case-insensitively. Empty input means HoldingNone.
func ParseHoldingStatus(raw string) (HoldingStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return HoldingNone, nil
	}
	for _, h := range HoldingStatuses {
		if strings.EqualFold(string(h), raw) {
			return h, nil
		}
	}
	return "", fmt.Errorf("unknown holding status %q", raw)
}

func (h *HoldingStatus) UnmarshalText(b []byte) error {
	parsed, err := ParseHoldingStatus(string(b))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// HoldingSubStatus refines HoldingTheyHaveCheck with how the check will reach the office.
type HoldingSubStatus string

const (
	SubStatusNone       HoldingSubStatus = ""
	SubStatusMailing    HoldingSubStatus = "Mailing"
	SubStatusPickup     HoldingSubStatus = "Pickup"
	SubStatusBringIn    HoldingSubStatus = "Bring in"
	SubStatusNoResponse HoldingSubStatus = "No response"
)

var HoldingSubStatuses = []HoldingSubStatus{SubStatusMailing, SubStatusPickup, SubStatusBringIn, SubStatusNoResponse}

func (s HoldingSubStatus) Valid() bool {
	switch s {
	case SubStatusNone, SubStatusMailing, SubStatusPickup, SubStatusBringIn, SubStatusNoResponse:
		return true
	}
	return false
}

func ParseHoldingSubStatus(raw string) (HoldingSubStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SubStatusNone, nil
	}
	for _, s := range HoldingSubStatuses {
		if strings.EqualFold(string(s), raw) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown holding sub-status %q", raw)
}

func (s *HoldingSubStatus) UnmarshalText(b []byte) error {
	parsed, err := ParseHoldingSubStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// EventType is the kind of calendar entry.
type EventType string

const (
	EventPickup   EventType = "Pickup"
	EventScope    EventType = "Scope"
	EventMeeting  EventType = "Meeting"
	EventInhome   EventType = "Inhome"
	EventDelivery EventType = "Delivery"
)

var EventTypes = []EventType{EventPickup, EventScope, EventMeeting, EventInhome, EventDelivery}

func (e EventType) Valid() bool {
	switch e {
	case EventPickup, EventScope, EventMeeting, EventInhome, EventDelivery:
		return true
	}
	return false
}

func ParseEventType(raw string) (EventType, error) {
	for _, e := range EventTypes {
		if strings.EqualFold(string(e), strings.TrimSpace(raw)) {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown event type %q", raw)
}

func (e *EventType) UnmarshalText(b []byte) error {
	parsed, err := ParseEventType(string(b))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// TaskType is the follow-up task an event is scheduled for.
type TaskType string

const (
	TaskPickupCheck       TaskType = "Pickup Check"
	TaskEndorseCheck      TaskType = "Endorse Check"
	TaskSignAuthorization TaskType = "Sign Authorization"
)

var TaskTypes = []TaskType{TaskPickupCheck, TaskEndorseCheck, TaskSignAuthorization}

func (t TaskType) Valid() bool {
	switch t {
	case TaskPickupCheck, TaskEndorseCheck, TaskSignAuthorization:
		return true
	}
	return false
}

func ParseTaskType(raw string) (TaskType, error) {
	for _, t := range TaskTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(raw)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown task type %q", raw)
}

func (t *TaskType) UnmarshalText(b []byte) error {
	parsed, err := ParseTaskType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// EventMode tells whether an invoice was linked to an existing or a newly created event.
type EventMode string

const (
	EventModeExisting EventMode = "existing"
	EventModeNew      EventMode = "new"
)

func (m EventMode) Valid() bool {
	return m == EventModeExisting || m == EventModeNew
}

// DOPStatus is the confirmation state of an order's date of possession.
type DOPStatus string

const (
	DOPConfirmed DOPStatus = "confirmed"
	DOPQuestion  DOPStatus = "question"
)

// AlertReason flags why an order shows up in the collections alert widget.
type AlertReason string

const (
	ReasonNonResponsive     AlertReason = "non-responsive"
	ReasonDeliveredNotPaid  AlertReason = "delivered-not-paid"
	ReasonCollectionConcern AlertReason = "collection-concern"
)
