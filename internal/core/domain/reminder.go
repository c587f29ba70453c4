package domain

import "time"

// Reminder is a standalone task-like entry shown on the dashboard.
// Reminders are only ever created or toggled, never deleted.
type Reminder struct {
	ReminderID string     `json:"reminderID"`
	Section    string     `json:"section"`
	Title      string     `json:"title"`
	Detail     string     `json:"detail"`
	CreatedAt  time.Time  `json:"createdAt"`
	AssigneeID string     `json:"assigneeID"`
	Done       bool       `json:"done"`
	DueAt      *time.Time `json:"dueAt,omitempty"`
}

func (r Reminder) Clone() Reminder {
	r.DueAt = cloneTime(r.DueAt)
	return r
}
