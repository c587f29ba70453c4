package dto

import (
	"fmt"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/dashboard"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
)

// ReminderQuery filters the reminders list.
type ReminderQuery struct {
	Scope    string `form:"scope" binding:"omitempty,oneof=mine all"`
	Section  string `form:"section"`
	ShowDone bool   `form:"showDone"`
}

// ToFilter builds a reminder filter for the acting user.
func (q ReminderQuery) ToFilter(actor string) dashboard.ReminderFilter {
	return dashboard.ReminderFilter{
		Scope:    dashboard.ParseScope(q.Scope),
		Actor:    actor,
		ShowDone: q.ShowDone,
		Section:  q.Section,
	}
}

// CreateReminderRequest is the new-reminder form.
type CreateReminderRequest struct {
	Section    string `json:"section"`
	Title      string `json:"title" binding:"required,max=200"`
	Detail     string `json:"detail" binding:"max=1000"`
	AssigneeID string `json:"assigneeID"`
	DueAt      string `json:"dueAt"` // YYYY-MM-DD
}

// ToDraft parses the optional due date.
func (r CreateReminderRequest) ToDraft() (portssvc.ReminderDraft, error) {
	draft := portssvc.ReminderDraft{
		Section:    r.Section,
		Title:      r.Title,
		Detail:     r.Detail,
		AssigneeID: r.AssigneeID,
	}
	if due := strings.TrimSpace(r.DueAt); due != "" {
		t, ok := domain.ParseDay(due)
		if !ok {
			return draft, fmt.Errorf("%w: dueAt must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		draft.DueAt = &t
	}
	return draft, nil
}

// RemindersResponse lists reminders.
type RemindersResponse struct {
	Reminders []domain.Reminder `json:"reminders"`
	Count     int               `json:"count"`
}
