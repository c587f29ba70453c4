package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a billable line item against an order.
// Invoices are replaced by id when mutated and never deleted.
type Invoice struct {
	InvoiceID        string           `json:"invoiceID"`
	OrderID          string           `json:"orderID"`
	InvoiceNumber    string           `json:"invoiceNumber"`
	Type             string           `json:"type"`
	BilledDate       string           `json:"billedDate"` // YYYY-MM-DD, may be malformed
	DueDate          string           `json:"dueDate"`    // YYYY-MM-DD, may be malformed
	Amount           decimal.Decimal  `json:"amount"`
	Balance          decimal.Decimal  `json:"balance"`
	Status           InvoiceStatus    `json:"status"`
	HoldingStatus    HoldingStatus    `json:"holdingStatus"`
	HoldingSubStatus HoldingSubStatus `json:"holdingSubStatus,omitempty"`
	ReminderDate     *time.Time       `json:"reminderDate,omitempty"`
	LastNote         string           `json:"lastNote,omitempty"`
	LinkedEvent      *EventRef        `json:"linkedEvent,omitempty"`
}

// IsOpen reports whether the invoice still has money to collect.
func (i Invoice) IsOpen() bool {
	return i.Balance.IsPositive() && i.Status != StatusPaid
}

// IsDeposited reports whether the invoice has been paid or fully settled.
func (i Invoice) IsDeposited() bool {
	return i.Status == StatusPaid || i.Balance.IsZero()
}

// Clone returns a deep copy; linked events are copied by value.
func (i Invoice) Clone() Invoice {
	i.ReminderDate = cloneTime(i.ReminderDate)
	if i.LinkedEvent != nil {
		ref := i.LinkedEvent.Clone()
		i.LinkedEvent = &ref
	}
	return i
}

// CloneInvoices deep-copies a slice of invoices.
func CloneInvoices(in []Invoice) []Invoice {
	out := make([]Invoice, len(in))
	for idx, inv := range in {
		out[idx] = inv.Clone()
	}
	return out
}
