// Package rules holds the side-effect free defaults applied when an invoice's
// status is updated or when invoices are linked to a calendar event.
// None of these functions fail: input they cannot interpret yields a default.
package rules

import (
	"fmt"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// DefaultTaskTypeForInvoice picks the follow-up task implied by who holds the check.
func DefaultTaskTypeForInvoice(inv *domain.Invoice) domain.TaskType {
	if inv == nil {
		return domain.TaskPickupCheck
	}
	switch inv.HoldingStatus {
	case domain.HoldingNeedsEndorsement:
		return domain.TaskEndorseCheck
	case domain.HoldingTheyHaveCheck, domain.HoldingPAHasCheck,
		domain.HoldingCustomerHasCheck, domain.HoldingOtherHasCheck:
		return domain.TaskPickupCheck
	case domain.HoldingNone:
		return domain.TaskPickupCheck
	}
	return domain.TaskPickupCheck
}

// DefaultEventTypeForTask picks the calendar event type for a task. Pickup Check
// is refined by the invoice's sub-status when the customer side holds the check.
func DefaultEventTypeForTask(task domain.TaskType, inv *domain.Invoice) domain.EventType {
	switch task {
	case domain.TaskEndorseCheck, domain.TaskSignAuthorization:
		return domain.EventMeeting
	case domain.TaskPickupCheck:
		if inv == nil || !inv.HoldingStatus.TracksSubStatus() {
			return domain.EventPickup
		}
		switch inv.HoldingSubStatus {
		case domain.SubStatusMailing:
			return domain.EventDelivery
		case domain.SubStatusBringIn:
			return domain.EventMeeting
		case domain.SubStatusPickup:
			return domain.EventPickup
		default:
			return domain.EventMeeting
		}
	}
	return domain.EventMeeting
}

// TitleParts are the inputs of a generated event title.
type TitleParts struct {
	EventType   domain.EventType
	TaskType    domain.TaskType
	OrderName   string
	OrderNumber string
}

// MakeDefaultTitle renders "{eventType} — {taskType} — {orderName} ({orderNumber})".
func MakeDefaultTitle(p TitleParts) string {
	return fmt.Sprintf("%s — %s — %s (%s)", p.EventType, p.TaskType, p.OrderName, p.OrderNumber)
}

// ApplyReminderUnlessEarlier reconciles an invoice reminder with a candidate date.
// The result is the earlier calendar date of the two; time of day is dropped.
// Repeated application never moves a reminder later.
func ApplyReminderUnlessEarlier(existing *time.Time, candidate time.Time) time.Time {
	c := domain.DateOnly(candidate)
	if existing == nil || existing.IsZero() {
		return c
	}
	e := domain.DateOnly(*existing)
	if e.After(c) {
		return c
	}
	return e
}

// StatusPayload is the holding-status part of a status update. An empty
// Status or HoldingStatus keeps the invoice's current value.
type StatusPayload struct {
	Status           domain.InvoiceStatus
	HoldingStatus    domain.HoldingStatus
	HoldingSubStatus domain.HoldingSubStatus
	Note             string
}

// ShowsSubStatus reports whether a sub-status selector belongs next to the holding status.
func ShowsSubStatus(h domain.HoldingStatus) bool {
	return h.TracksSubStatus()
}

// NormalizeStatusPayload drops the sub-status unless the holding status tracks one.
func NormalizeStatusPayload(p StatusPayload) StatusPayload {
	if !p.HoldingStatus.Valid() {
		p.HoldingStatus = domain.HoldingNone
	}
	if !ShowsSubStatus(p.HoldingStatus) || !p.HoldingSubStatus.Valid() {
		p.HoldingSubStatus = domain.SubStatusNone
	}
	return p
}

// ApplyStatus returns inv with the status payload applied. Empty fields keep
// the current values; the sub-status is normalized against the resulting
// holding status.
func ApplyStatus(inv domain.Invoice, p StatusPayload) domain.Invoice {
	out := inv.Clone()
	if p.Status.Valid() {
		out.Status = p.Status
	}
	if p.HoldingStatus != "" {
		p = NormalizeStatusPayload(p)
		out.HoldingStatus = p.HoldingStatus
		out.HoldingSubStatus = p.HoldingSubStatus
	} else if p.HoldingSubStatus != domain.SubStatusNone {
		p.HoldingStatus = out.HoldingStatus
		p = NormalizeStatusPayload(p)
		if p.HoldingSubStatus != domain.SubStatusNone {
			out.HoldingSubStatus = p.HoldingSubStatus
		}
	}
	if p.Note != "" {
		out.LastNote = p.Note
	}
	return out
}

// LinkEvent attaches a private copy of ref to inv and pulls the reminder
// forward to the event's start date when that is earlier.
func LinkEvent(inv domain.Invoice, ref domain.EventRef) domain.Invoice {
	out := inv.Clone()
	own := ref.Clone()
	out.LinkedEvent = &own
	reminder := ApplyReminderUnlessEarlier(out.ReminderDate, ref.Start)
	out.ReminderDate = &reminder
	return out
}

// UnlinkEvent removes the linked event. The reminder date is kept.
func UnlinkEvent(inv domain.Invoice) domain.Invoice {
	out := inv.Clone()
	out.LinkedEvent = nil
	return out
}
