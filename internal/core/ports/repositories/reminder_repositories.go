package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// ReminderReader defines read operations for dashboard reminders
type ReminderReader interface {
	ListReminders(ctx context.Context) ([]domain.Reminder, error)
	FindReminderByID(ctx context.Context, reminderID string) (*domain.Reminder, error)
}

// ReminderWriter defines write operations for dashboard reminders. There is no delete.
type ReminderWriter interface {
	// SaveReminder persists a new reminder. A duplicate id is apperrors.ErrConflict.
	SaveReminder(ctx context.Context, reminder domain.Reminder) error

	// UpdateReminder replaces an existing reminder by id.
	UpdateReminder(ctx context.Context, reminder domain.Reminder) error

	// ModifyReminder applies fn to the stored reminder atomically.
	ModifyReminder(ctx context.Context, reminderID string, fn func(domain.Reminder) domain.Reminder) (*domain.Reminder, error)
}

// ReminderRepositoryFacade combines all reminder-related repository interfaces
type ReminderRepositoryFacade interface {
	ReminderReader
	ReminderWriter
}
