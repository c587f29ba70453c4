package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/dashboard"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// EventReminderCreated and EventReminderToggled are reminder analytics events.
const (
	EventReminderCreated = "reminder_created"
	EventReminderToggled = "reminder_toggled"
)

type reminderService struct {
	BaseService
	reminderRepo portsrepo.ReminderRepositoryFacade
	coworkerRepo portsrepo.CoworkerReader
	now          func() time.Time
}

// ReminderServiceOption is a functional option for configuring the reminder service
type ReminderServiceOption func(*reminderService)

// WithReminderClock overrides the clock used to stamp new reminders.
func WithReminderClock(now func() time.Time) ReminderServiceOption {
	return func(s *reminderService) {
		s.now = now
	}
}

// WithReminderAnalytics sends an analytics event after every change.
func WithReminderAnalytics(a portssvc.Analytics) ReminderServiceOption {
	return func(s *reminderService) {
		s.Analytics = a
	}
}

// NewReminderService creates the reminder service.
func NewReminderService(reminderRepo portsrepo.ReminderRepositoryFacade, coworkerRepo portsrepo.CoworkerReader, options ...ReminderServiceOption) portssvc.ReminderSvcFacade {
	svc := &reminderService{
		reminderRepo: reminderRepo,
		coworkerRepo: coworkerRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReminderSvcFacade = (*reminderService)(nil)

func (s *reminderService) ListReminders(ctx context.Context, filter dashboard.ReminderFilter) ([]domain.Reminder, error) {
	reminders, err := s.reminderRepo.ListReminders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reminders")
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return dashboard.FilterReminders(reminders, filter), nil
}

// CreateReminder stores a new open reminder. A missing assignee defaults to the actor.
func (s *reminderService) CreateReminder(ctx context.Context, draft portssvc.ReminderDraft, actor string) (*domain.Reminder, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: reminder title is required", apperrors.ErrValidation)
	}

	assignee := strings.TrimSpace(draft.AssigneeID)
	if assignee == "" {
		assignee = actor
	}
	if assignee != "" {
		if _, err := s.coworkerRepo.FindCoworkerByID(ctx, assignee); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown assignee %s", apperrors.ErrValidation, assignee)
			}
			return nil, fmt.Errorf("failed to check assignee: %w", err)
		}
	}

	section := strings.ToLower(strings.TrimSpace(draft.Section))
	if section == "" {
		section = "general"
	}

	reminder := domain.Reminder{
		ReminderID: uuid.NewString(),
		Section:    section,
		Title:      title,
		Detail:     strings.TrimSpace(draft.Detail),
		CreatedAt:  s.now(),
		AssigneeID: assignee,
		DueAt:      draft.DueAt,
	}
	if err := s.reminderRepo.SaveReminder(ctx, reminder); err != nil {
		s.LogError(ctx, err, "Failed to save reminder", slog.String("title", title))
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	s.LogInfo(ctx, "Reminder created", slog.String("reminder_id", reminder.ReminderID))
	s.Track(actor, EventReminderCreated, map[string]any{"section": section, "assignee_id": assignee})
	created := reminder.Clone()
	return &created, nil
}

func (s *reminderService) ToggleDone(ctx context.Context, reminderID string, actor string) (*domain.Reminder, error) {
	reminder, err := s.reminderRepo.ModifyReminder(ctx, reminderID, func(r domain.Reminder) domain.Reminder {
		r.Done = !r.Done
		return r
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to toggle reminder", slog.String("reminder_id", reminderID))
		return nil, fmt.Errorf("failed to toggle reminder: %w", err)
	}

	s.LogInfo(ctx, "Reminder toggled", slog.String("reminder_id", reminderID), slog.Bool("done", reminder.Done))
	s.Track(actor, EventReminderToggled, map[string]any{"reminder_id": reminderID, "done": reminder.Done})
	return reminder, nil
}
