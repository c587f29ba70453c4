package dialog

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/rules"
)

// Patch carries a partial edit of a draft. Nil fields are left alone and
// fields that do not belong to the open dialog's kind are ignored.
type Patch struct {
	Status           *domain.InvoiceStatus    `json:"status,omitempty"`
	HoldingStatus    *domain.HoldingStatus    `json:"holdingStatus,omitempty"`
	HoldingSubStatus *domain.HoldingSubStatus `json:"holdingSubStatus,omitempty"`
	Note             *string                  `json:"note,omitempty"`

	Mode                *domain.EventMode `json:"mode,omitempty"`
	EventID             *string           `json:"eventID,omitempty"`
	Title               *string           `json:"title,omitempty"`
	Start               *time.Time        `json:"start,omitempty"`
	EventType           *domain.EventType `json:"eventType,omitempty"`
	TaskType            *domain.TaskType  `json:"taskType,omitempty"`
	NotifiedCoworkerIDs *[]string         `json:"notifiedCoworkerIDs,omitempty"`

	Reason    *string `json:"reason,omitempty"`
	Confirmed *bool   `json:"confirmed,omitempty"`
}

// Payload is the typed draft data held while a dialog is open.
type Payload interface {
	Kind() Kind
	apply(Patch)
	clone() Payload
}

// StatusDraft edits status and holding status of the target invoices.
type StatusDraft struct {
	Status           domain.InvoiceStatus    `json:"status" validate:"omitempty,enum"`
	HoldingStatus    domain.HoldingStatus    `json:"holdingStatus" validate:"required,enum"`
	HoldingSubStatus domain.HoldingSubStatus `json:"holdingSubStatus" validate:"omitempty,enum"`
	ShowSubStatus    bool                    `json:"showSubStatus"`
	Note             string                  `json:"note" validate:"max=500"`
}

// NewStatusDraft starts from the first target invoice's current values.
func NewStatusDraft(first *domain.Invoice) *StatusDraft {
	d := &StatusDraft{HoldingStatus: domain.HoldingNone}
	if first != nil {
		d.Status = first.Status
		d.HoldingStatus = first.HoldingStatus
		d.HoldingSubStatus = first.HoldingSubStatus
	}
	d.normalize()
	return d
}

func (d *StatusDraft) Kind() Kind { return KindStatusUpdate }

func (d *StatusDraft) clone() Payload {
	c := *d
	return &c
}

func (d *StatusDraft) apply(p Patch) {
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.HoldingStatus != nil {
		d.HoldingStatus = *p.HoldingStatus
	}
	if p.HoldingSubStatus != nil {
		d.HoldingSubStatus = *p.HoldingSubStatus
	}
	if p.Note != nil {
		d.Note = *p.Note
	}
	d.normalize()
}

func (d *StatusDraft) normalize() {
	d.ShowSubStatus = rules.ShowsSubStatus(d.HoldingStatus)
	if !d.ShowSubStatus {
		d.HoldingSubStatus = domain.SubStatusNone
	}
}

// Payload converts the draft to the rule input used by the invoice service.
func (d *StatusDraft) Payload() rules.StatusPayload {
	return rules.NormalizeStatusPayload(rules.StatusPayload{
		Status:           d.Status,
		HoldingStatus:    d.HoldingStatus,
		HoldingSubStatus: d.HoldingSubStatus,
		Note:             d.Note,
	})
}

// EventLinkDraft links the target invoices to an existing or a new event.
// While TitleEdited is false the title follows the event and task type.
type EventLinkDraft struct {
	Mode                domain.EventMode `json:"mode" validate:"required,enum"`
	EventID             string           `json:"eventID" validate:"required_if=Mode existing"`
	Title               string           `json:"title" validate:"required_if=Mode new,max=200"`
	Start               time.Time        `json:"start" validate:"required_if=Mode new"`
	EventType           domain.EventType `json:"eventType" validate:"required,enum"`
	TaskType            domain.TaskType  `json:"taskType" validate:"required,enum"`
	NotifiedCoworkerIDs []string         `json:"notifiedCoworkerIDs" validate:"dive,required"`
	TitleEdited         bool             `json:"titleEdited"`

	OrderName   string `json:"orderName"`
	OrderNumber string `json:"orderNumber"`

	first *domain.Invoice
}

// NewEventLinkDraft derives task type, event type and title from the first
// target invoice and its order.
func NewEventLinkDraft(first *domain.Invoice, order *domain.Order) *EventLinkDraft {
	d := &EventLinkDraft{
		Mode:                domain.EventModeNew,
		NotifiedCoworkerIDs: []string{},
	}
	if first != nil {
		c := first.Clone()
		d.first = &c
	}
	if order != nil {
		d.OrderName = order.Name
		d.OrderNumber = order.OrderNumber
	}
	d.TaskType = rules.DefaultTaskTypeForInvoice(d.first)
	d.EventType = rules.DefaultEventTypeForTask(d.TaskType, d.first)
	d.syncTitle()
	return d
}

func (d *EventLinkDraft) Kind() Kind { return KindEventLink }

func (d *EventLinkDraft) clone() Payload {
	c := *d
	c.NotifiedCoworkerIDs = append([]string{}, d.NotifiedCoworkerIDs...)
	return &c
}

// FirstInvoice is the invoice the defaults were derived from, if any.
func (d *EventLinkDraft) FirstInvoice() *domain.Invoice {
	return d.first
}

func (d *EventLinkDraft) apply(p Patch) {
	if p.Mode != nil {
		d.Mode = *p.Mode
	}
	if p.EventID != nil {
		d.EventID = *p.EventID
	}
	if p.Start != nil {
		d.Start = *p.Start
	}
	if p.NotifiedCoworkerIDs != nil {
		d.NotifiedCoworkerIDs = append([]string{}, (*p.NotifiedCoworkerIDs)...)
	}
	if p.TaskType != nil {
		d.TaskType = *p.TaskType
		if p.EventType == nil {
			d.EventType = rules.DefaultEventTypeForTask(d.TaskType, d.first)
		}
	}
	if p.EventType != nil {
		d.EventType = *p.EventType
	}
	if p.Title != nil {
		d.Title = *p.Title
		d.TitleEdited = true
	}
	d.syncTitle()
}

func (d *EventLinkDraft) syncTitle() {
	if d.TitleEdited {
		return
	}
	d.Title = rules.MakeDefaultTitle(rules.TitleParts{
		EventType:   d.EventType,
		TaskType:    d.TaskType,
		OrderName:   d.OrderName,
		OrderNumber: d.OrderNumber,
	})
}

// DisputeDraft marks the target invoices disputed with a reason.
type DisputeDraft struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

func (d *DisputeDraft) Kind() Kind { return KindDispute }

func (d *DisputeDraft) clone() Payload {
	c := *d
	return &c
}

func (d *DisputeDraft) apply(p Patch) {
	if p.Reason != nil {
		d.Reason = *p.Reason
	}
}

// AuditDraft records a note against the target invoices.
type AuditDraft struct {
	Note string `json:"note" validate:"required,max=500"`
}

func (d *AuditDraft) Kind() Kind { return KindAudit }

func (d *AuditDraft) clone() Payload {
	c := *d
	return &c
}

func (d *AuditDraft) apply(p Patch) {
	if p.Note != nil {
		d.Note = *p.Note
	}
}

// MarkPaidDraft asks for confirmation before settling the target invoices.
type MarkPaidDraft struct {
	Confirmed bool `json:"confirmed" validate:"required"`
}

func (d *MarkPaidDraft) Kind() Kind { return KindMarkPaid }

func (d *MarkPaidDraft) clone() Payload {
	c := *d
	return &c
}

func (d *MarkPaidDraft) apply(p Patch) {
	if p.Confirmed != nil {
		d.Confirmed = *p.Confirmed
	}
}
