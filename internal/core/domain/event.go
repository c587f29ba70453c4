package domain

import "time"

// Event is a calendar entry that invoices can be linked to.
type Event struct {
	EventID   string    `json:"eventID"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	EventType EventType `json:"eventType"`
	OrderID   string    `json:"orderID,omitempty"`
	CreatedBy string    `json:"createdBy,omitempty"`
}

// EventRef is the copy of an event held by a linked invoice.
// Each invoice owns its own EventRef; editing one never affects another.
type EventRef struct {
	EventID             string    `json:"eventID"`
	Title               string    `json:"title"`
	Start               time.Time `json:"start"`
	Mode                EventMode `json:"mode"`
	EventType           EventType `json:"eventType"`
	TaskType            TaskType  `json:"taskType"`
	NotifiedCoworkerIDs []string  `json:"notifiedCoworkerIDs"`
}

// Clone deep-copies the reference, including the notified coworker list.
func (r EventRef) Clone() EventRef {
	if r.NotifiedCoworkerIDs != nil {
		ids := make([]string, len(r.NotifiedCoworkerIDs))
		copy(ids, r.NotifiedCoworkerIDs)
		r.NotifiedCoworkerIDs = ids
	}
	return r
}
