package domain

import "time"

// Order is a customer job that accumulates invoices. Orders are seeded and never mutated at runtime.
type Order struct {
	OrderID        string     `json:"orderID"`
	OrderNumber    string     `json:"orderNumber"`
	Name           string     `json:"name"`
	BillToCompany  string     `json:"billToCompany"`
	BillToPerson   string     `json:"billToPerson"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Rep            string     `json:"rep"` // sales rep code
	NextFollowUp   *time.Time `json:"nextFollowUp,omitempty"`
	ClaimNumber    string     `json:"claimNumber"`
	PolicyNumber   string     `json:"policyNumber"`
	ServiceAddress string     `json:"serviceAddress"`

	// Storage and delivery tracking, read by the dashboard widgets.
	StorageExpiresAt *time.Time `json:"storageExpiresAt,omitempty"`
	EstFinalDelivery *time.Time `json:"estFinalDelivery,omitempty"`
	DOPStatus        DOPStatus  `json:"dopStatus,omitempty"`
	DeliveryDue      *time.Time `json:"deliveryDue,omitempty"`
}

// Clone returns a copy that shares no pointers with o.
func (o Order) Clone() Order {
	o.NextFollowUp = cloneTime(o.NextFollowUp)
	o.StorageExpiresAt = cloneTime(o.StorageExpiresAt)
	o.EstFinalDelivery = cloneTime(o.EstFinalDelivery)
	o.DeliveryDue = cloneTime(o.DeliveryDue)
	return o
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
