package services

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/dashboard"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// ReminderDraft is the input of the new-reminder form.
type ReminderDraft struct {
	Section    string
	Title      string
	Detail     string
	AssigneeID string
	DueAt      *time.Time
}

// ReminderReaderSvc defines read operations for reminders
type ReminderReaderSvc interface {
	ListReminders(ctx context.Context, filter dashboard.ReminderFilter) ([]domain.Reminder, error)
}

// ReminderWriterSvc creates and toggles reminders. Reminders are never deleted.
type ReminderWriterSvc interface {
	CreateReminder(ctx context.Context, draft ReminderDraft, actor string) (*domain.Reminder, error)
	ToggleDone(ctx context.Context, reminderID string, actor string) (*domain.Reminder, error)
}

// ReminderSvcFacade combines all reminder-related service interfaces
type ReminderSvcFacade interface {
	ReminderReaderSvc
	ReminderWriterSvc
}
