package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/rules"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Analytics event names emitted by the invoice service.
const (
	EventStatusUpdated = "invoice_status_updated"
	EventEventLinked   = "invoice_event_linked"
	EventEventUnlinked = "invoice_event_unlinked"
	EventMarkedPaid    = "invoice_marked_paid"
	EventDisputed      = "invoice_disputed"
	EventAuditRecorded = "invoice_audit_recorded"
)

const maxNoteLength = 500

type invoiceService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	eventRepo    portsrepo.EventRepositoryFacade
	coworkerRepo portsrepo.CoworkerReader
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithInvoiceAnalytics sends an analytics event after every successful mutation.
func WithInvoiceAnalytics(a portssvc.Analytics) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.Analytics = a
	}
}

// WithCoworkerRepository enables validation of notified coworker ids.
func WithCoworkerRepository(repo portsrepo.CoworkerReader) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.coworkerRepo = repo
	}
}

// NewInvoiceService creates the invoice mutation service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, eventRepo portsrepo.EventRepositoryFacade, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo: invoiceRepo,
		eventRepo:   eventRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) UpdateStatus(ctx context.Context, invoiceIDs []string, payload rules.StatusPayload, actor string) ([]domain.Invoice, error) {
	if payload.Status != "" && !payload.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown invoice status %q", apperrors.ErrValidation, payload.Status)
	}
	if payload.HoldingStatus != "" && !payload.HoldingStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown holding status %q", apperrors.ErrValidation, payload.HoldingStatus)
	}
	if err := checkNote(payload.Note, false); err != nil {
		return nil, err
	}
	payload.Note = strings.TrimSpace(payload.Note)

	updated, err := s.mutate(ctx, invoiceIDs, func(inv domain.Invoice) domain.Invoice {
		return rules.ApplyStatus(inv, payload)
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Invoice status updated",
		slog.Int("count", len(updated)),
		slog.String("holding_status", string(payload.HoldingStatus)))
	s.Track(actor, EventStatusUpdated, map[string]any{
		"count":          len(updated),
		"status":         string(payload.Status),
		"holding_status": string(payload.HoldingStatus),
	})
	return updated, nil
}

func (s *invoiceService) LinkEvent(ctx context.Context, invoiceIDs []string, cmd portssvc.LinkEventCommand, actor string) ([]domain.Invoice, error) {
	ids, err := uniqueIDs(invoiceIDs)
	if err != nil {
		return nil, err
	}
	targets, err := s.invoiceRepo.FindInvoicesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if err := s.checkCoworkers(ctx, cmd.NotifiedCoworkerIDs); err != nil {
		return nil, err
	}

	first := &targets[0]
	if cmd.TaskType == "" {
		cmd.TaskType = rules.DefaultTaskTypeForInvoice(first)
	}
	if !cmd.TaskType.Valid() {
		return nil, fmt.Errorf("%w: unknown task type %q", apperrors.ErrValidation, cmd.TaskType)
	}

	var (
		ref     domain.EventRef
		created *domain.Event
	)
	switch cmd.Mode {
	case domain.EventModeExisting:
		ref, err = s.existingEventRef(ctx, cmd)
	case domain.EventModeNew:
		created, ref, err = newEvent(cmd, first, actor)
	default:
		err = fmt.Errorf("%w: unknown event mode %q", apperrors.ErrValidation, cmd.Mode)
	}
	if err != nil {
		return nil, err
	}

	linked, err := s.invoiceRepo.UpdateInvoices(ctx, ids, func(inv domain.Invoice) domain.Invoice {
		return rules.LinkEvent(inv, ref)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to store linked invoices", slog.String("event_id", ref.EventID))
		return nil, fmt.Errorf("failed to link invoices: %w", err)
	}

	// A new event is only stored once the invoices point at it.
	if created != nil {
		if err := s.eventRepo.SaveEvent(ctx, *created); err != nil {
			s.LogError(ctx, err, "Failed to save event", slog.String("event_id", created.EventID))
			s.revertLink(ctx, targets, created.EventID)
			return nil, fmt.Errorf("failed to create event: %w", err)
		}
		s.LogInfo(ctx, "Event created", slog.String("event_id", created.EventID))
	}

	s.LogInfo(ctx, "Invoices linked to event",
		slog.String("event_id", ref.EventID),
		slog.String("mode", string(ref.Mode)),
		slog.Int("count", len(linked)))
	s.Track(actor, EventEventLinked, map[string]any{
		"count":      len(linked),
		"event_id":   ref.EventID,
		"mode":       string(ref.Mode),
		"task_type":  string(ref.TaskType),
		"event_type": string(ref.EventType),
	})
	return domain.CloneInvoices(linked), nil
}

func (s *invoiceService) existingEventRef(ctx context.Context, cmd portssvc.LinkEventCommand) (domain.EventRef, error) {
	eventID := strings.TrimSpace(cmd.EventID)
	if eventID == "" {
		return domain.EventRef{}, fmt.Errorf("%w: event id is required", apperrors.ErrValidation)
	}
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.EventRef{}, fmt.Errorf("%w: event %s does not exist", apperrors.ErrValidation, eventID)
		}
		return domain.EventRef{}, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}
	return domain.EventRef{
		EventID:             event.EventID,
		Title:               event.Title,
		Start:               event.Start,
		Mode:                domain.EventModeExisting,
		EventType:           event.EventType,
		TaskType:            cmd.TaskType,
		NotifiedCoworkerIDs: notified(cmd.NotifiedCoworkerIDs),
	}, nil
}

// newEvent validates a new event and builds it together with its reference.
// Nothing is stored.
func newEvent(cmd portssvc.LinkEventCommand, first *domain.Invoice, actor string) (*domain.Event, domain.EventRef, error) {
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		return nil, domain.EventRef{}, fmt.Errorf("%w: event title is required", apperrors.ErrValidation)
	}
	if cmd.Start.IsZero() {
		return nil, domain.EventRef{}, fmt.Errorf("%w: event start is required", apperrors.ErrValidation)
	}
	eventType := cmd.EventType
	if eventType == "" {
		eventType = rules.DefaultEventTypeForTask(cmd.TaskType, first)
	}
	if !eventType.Valid() {
		return nil, domain.EventRef{}, fmt.Errorf("%w: unknown event type %q", apperrors.ErrValidation, eventType)
	}

	event := &domain.Event{
		EventID:   uuid.NewString(),
		Title:     title,
		Start:     cmd.Start,
		EventType: eventType,
		OrderID:   first.OrderID,
		CreatedBy: actor,
	}
	return event, domain.EventRef{
		EventID:             event.EventID,
		Title:               event.Title,
		Start:               event.Start,
		Mode:                domain.EventModeNew,
		EventType:           event.EventType,
		TaskType:            cmd.TaskType,
		NotifiedCoworkerIDs: notified(cmd.NotifiedCoworkerIDs),
	}, nil
}

// revertLink restores the link and reminder of invoices that still point at eventID.
func (s *invoiceService) revertLink(ctx context.Context, before []domain.Invoice, eventID string) {
	prev := make(map[string]domain.Invoice, len(before))
	ids := make([]string, len(before))
	for i, inv := range before {
		prev[inv.InvoiceID] = inv
		ids[i] = inv.InvoiceID
	}
	_, err := s.invoiceRepo.UpdateInvoices(ctx, ids, func(inv domain.Invoice) domain.Invoice {
		if inv.LinkedEvent == nil || inv.LinkedEvent.EventID != eventID {
			return inv
		}
		old := prev[inv.InvoiceID].Clone()
		inv.LinkedEvent = old.LinkedEvent
		inv.ReminderDate = old.ReminderDate
		return inv
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to revert event link", slog.String("event_id", eventID))
	}
}

func (s *invoiceService) UnlinkEvent(ctx context.Context, invoiceID string, actor string) (*domain.Invoice, error) {
	updated, err := s.mutate(ctx, []string{invoiceID}, rules.UnlinkEvent)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Invoice unlinked from event", slog.String("invoice_id", invoiceID))
	s.Track(actor, EventEventUnlinked, map[string]any{"invoice_id": invoiceID})
	return &updated[0], nil
}

func (s *invoiceService) MarkPaid(ctx context.Context, invoiceIDs []string, actor string) ([]domain.Invoice, error) {
	updated, err := s.mutate(ctx, invoiceIDs, func(inv domain.Invoice) domain.Invoice {
		out := inv.Clone()
		out.Status = domain.StatusPaid
		out.Balance = decimal.Zero
		return out
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Invoices marked paid", slog.Int("count", len(updated)))
	s.Track(actor, EventMarkedPaid, map[string]any{"count": len(updated)})
	return updated, nil
}

func (s *invoiceService) Dispute(ctx context.Context, invoiceIDs []string, reason string, actor string) ([]domain.Invoice, error) {
	if err := checkNote(reason, true); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	updated, err := s.mutate(ctx, invoiceIDs, func(inv domain.Invoice) domain.Invoice {
		out := inv.Clone()
		out.Status = domain.StatusDisputed
		out.LastNote = reason
		return out
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Invoices disputed", slog.Int("count", len(updated)))
	s.Track(actor, EventDisputed, map[string]any{"count": len(updated)})
	return updated, nil
}

func (s *invoiceService) Audit(ctx context.Context, invoiceIDs []string, note string, actor string) ([]domain.Invoice, error) {
	if err := checkNote(note, true); err != nil {
		return nil, err
	}
	note = strings.TrimSpace(note)
	updated, err := s.mutate(ctx, invoiceIDs, func(inv domain.Invoice) domain.Invoice {
		out := inv.Clone()
		out.LastNote = note
		return out
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Audit note recorded", slog.Int("count", len(updated)))
	s.Track(actor, EventAuditRecorded, map[string]any{"count": len(updated)})
	return updated, nil
}

// mutate applies fn to the target invoices in one atomic store update so
// either all or none change.
func (s *invoiceService) mutate(ctx context.Context, invoiceIDs []string, fn func(domain.Invoice) domain.Invoice) ([]domain.Invoice, error) {
	ids, err := uniqueIDs(invoiceIDs)
	if err != nil {
		return nil, err
	}
	next, err := s.invoiceRepo.UpdateInvoices(ctx, ids, fn)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update invoices", slog.Int("count", len(ids)))
		return nil, fmt.Errorf("failed to update invoices: %w", err)
	}
	return domain.CloneInvoices(next), nil
}

func (s *invoiceService) checkCoworkers(ctx context.Context, ids []string) error {
	if s.coworkerRepo == nil {
		return nil
	}
	for _, id := range ids {
		if _, err := s.coworkerRepo.FindCoworkerByID(ctx, id); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: unknown coworker %s", apperrors.ErrValidation, id)
			}
			return fmt.Errorf("failed to check coworker %s: %w", id, err)
		}
	}
	return nil
}

// uniqueIDs trims and de-duplicates ids, keeping their first occurrence order.
func uniqueIDs(ids []string) ([]string, error) {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no invoices given", apperrors.ErrValidation)
	}
	return out, nil
}

func checkNote(note string, required bool) error {
	note = strings.TrimSpace(note)
	if required && note == "" {
		return fmt.Errorf("%w: a note is required", apperrors.ErrValidation)
	}
	if len([]rune(note)) > maxNoteLength {
		return fmt.Errorf("%w: note longer than %d characters", apperrors.ErrValidation, maxNoteLength)
	}
	return nil
}

func notified(ids []string) []string {
	out := make([]string, 0, len(ids))
	return append(out, ids...)
}
