// Package memory is the process-wide state container for business data.
// It is seeded at start-up and lives for the lifetime of the process.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/seed"
)

const subscriberBuffer = 16

// Store holds orders, invoices, events and reminders behind a single lock.
// Everything it hands out is a copy.
type Store struct {
	mu sync.RWMutex

	orders     []domain.Order
	invoices   []domain.Invoice
	invoiceIdx map[string]int
	events     []domain.Event
	reminders  []domain.Reminder
	coworkers  []domain.Coworker
	activities []domain.Activity
	documents  []domain.Document
	alerts     []domain.CollectionAlert
	series     map[string][]domain.PerformancePoint

	subMu  sync.Mutex
	nextID int
	subs   map[int]chan domain.ChangeEvent

	now func() time.Time
}

// StoreOption is a functional option for configuring the store
type StoreOption func(*Store)

// WithClock overrides the clock used to stamp change events.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithInvoices replaces the seeded invoices, mostly for tests.
func WithInvoices(invoices []domain.Invoice) StoreOption {
	return func(s *Store) {
		s.invoices = domain.CloneInvoices(invoices)
	}
}

// WithOrders replaces the seeded orders, mostly for tests.
func WithOrders(orders []domain.Order) StoreOption {
	return func(s *Store) {
		s.orders = make([]domain.Order, len(orders))
		for i, o := range orders {
			s.orders[i] = o.Clone()
		}
	}
}

// NewStore creates a store loaded with the seed dataset.
func NewStore(options ...StoreOption) *Store {
	s := &Store{
		orders:     seed.Orders(),
		invoices:   seed.Invoices(),
		events:     seed.Events(),
		reminders:  seed.Reminders(),
		coworkers:  seed.Coworkers(),
		activities: seed.Activities(),
		documents:  seed.Documents(),
		alerts:     seed.CollectionAlerts(),
		series:     seed.Series(),
		subs:       make(map[int]chan domain.ChangeEvent),
		now:        time.Now,
	}
	for _, option := range options {
		option(s)
	}
	s.reindex()
	return s
}

// NewRepositoryProvider exposes a store through every repository port.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OrderRepo:     s,
		InvoiceRepo:   s,
		EventRepo:     s,
		ReminderRepo:  s,
		CoworkerRepo:  s,
		DashboardRepo: s,
		Changes:       s,
	}
}

var (
	_ portsrepo.OrderRepositoryFacade    = (*Store)(nil)
	_ portsrepo.InvoiceRepositoryFacade  = (*Store)(nil)
	_ portsrepo.EventRepositoryFacade    = (*Store)(nil)
	_ portsrepo.ReminderRepositoryFacade = (*Store)(nil)
	_ portsrepo.CoworkerReader           = (*Store)(nil)
	_ portsrepo.DashboardReader          = (*Store)(nil)
	_ portsrepo.ChangeNotifier           = (*Store)(nil)
)

func (s *Store) reindex() {
	s.invoiceIdx = make(map[string]int, len(s.invoices))
	for i, inv := range s.invoices {
		s.invoiceIdx[inv.InvoiceID] = i
	}
}

// --- orders ---

func (s *Store) ListOrders(_ context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out, nil
}

func (s *Store) FindOrderByID(_ context.Context, orderID string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.OrderID == orderID {
			c := o.Clone()
			return &c, nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", orderID, apperrors.ErrNotFound)
}

func (s *Store) ListActivities(_ context.Context, orderID string) ([]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Activity{}
	for _, a := range s.activities {
		if a.OrderID == orderID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Store) ListDocuments(_ context.Context, orderID string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Document{}
	for _, d := range s.documents {
		if d.OrderID == orderID {
			out = append(out, d)
		}
	}
	return out, nil
}

// --- invoices ---

func (s *Store) ListInvoices(_ context.Context) ([]domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneInvoices(s.invoices), nil
}

func (s *Store) FindInvoiceByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.invoiceIdx[invoiceID]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}
	c := s.invoices[idx].Clone()
	return &c, nil
}

func (s *Store) FindInvoicesByIDs(_ context.Context, invoiceIDs []string) ([]domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Invoice, 0, len(invoiceIDs))
	for _, id := range invoiceIDs {
		idx, ok := s.invoiceIdx[id]
		if !ok {
			return nil, fmt.Errorf("invoice %s: %w", id, apperrors.ErrNotFound)
		}
		out = append(out, s.invoices[idx].Clone())
	}
	return out, nil
}

func (s *Store) ListInvoicesByOrder(_ context.Context, orderID string) ([]domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Invoice{}
	for _, inv := range s.invoices {
		if inv.OrderID == orderID {
			out = append(out, inv.Clone())
		}
	}
	return out, nil
}

func (s *Store) ReplaceInvoices(_ context.Context, invoices []domain.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}
	s.mu.Lock()
	for _, inv := range invoices {
		if _, ok := s.invoiceIdx[inv.InvoiceID]; !ok {
			s.mu.Unlock()
			return fmt.Errorf("replace invoice %s: %w", inv.InvoiceID, apperrors.ErrNotFound)
		}
	}
	ids := make([]string, len(invoices))
	for i, inv := range invoices {
		s.invoices[s.invoiceIdx[inv.InvoiceID]] = inv.Clone()
		ids[i] = inv.InvoiceID
	}
	s.mu.Unlock()

	s.publish(domain.ChangeInvoices, ids)
	return nil
}

// UpdateInvoices applies fn to each invoice under a single write lock, so
// concurrent read-modify-write cycles on the same invoice cannot interleave.
// Unknown ids fail the whole update with apperrors.ErrNotFound. fn cannot
// change an invoice's id.
func (s *Store) UpdateInvoices(_ context.Context, invoiceIDs []string, fn func(domain.Invoice) domain.Invoice) ([]domain.Invoice, error) {
	if len(invoiceIDs) == 0 {
		return []domain.Invoice{}, nil
	}
	s.mu.Lock()
	for _, id := range invoiceIDs {
		if _, ok := s.invoiceIdx[id]; !ok {
			s.mu.Unlock()
			return nil, fmt.Errorf("update invoice %s: %w", id, apperrors.ErrNotFound)
		}
	}
	next := make([]domain.Invoice, len(invoiceIDs))
	for i, id := range invoiceIDs {
		idx := s.invoiceIdx[id]
		inv := fn(s.invoices[idx].Clone())
		inv.InvoiceID = id
		s.invoices[idx] = inv.Clone()
		next[i] = inv
	}
	s.mu.Unlock()

	ids := make([]string, len(invoiceIDs))
	copy(ids, invoiceIDs)
	s.publish(domain.ChangeInvoices, ids)
	return next, nil
}

// --- events ---

func (s *Store) ListEvents(_ context.Context) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

func (s *Store) FindEventByID(_ context.Context, eventID string) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e.EventID == eventID {
			c := e
			return &c, nil
		}
	}
	return nil, fmt.Errorf("event %s: %w", eventID, apperrors.ErrNotFound)
}

func (s *Store) SaveEvent(_ context.Context, event domain.Event) error {
	s.mu.Lock()
	replaced := false
	for i, e := range s.events {
		if e.EventID == event.EventID {
			s.events[i] = event
			replaced = true
			break
		}
	}
	if !replaced {
		s.events = append(s.events, event)
	}
	s.mu.Unlock()

	s.publish(domain.ChangeEvents, []string{event.EventID})
	return nil
}

// --- reminders ---

func (s *Store) ListReminders(_ context.Context) ([]domain.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Reminder, len(s.reminders))
	for i, r := range s.reminders {
		out[i] = r.Clone()
	}
	return out, nil
}

func (s *Store) FindReminderByID(_ context.Context, reminderID string) (*domain.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reminders {
		if r.ReminderID == reminderID {
			c := r.Clone()
			return &c, nil
		}
	}
	return nil, fmt.Errorf("reminder %s: %w", reminderID, apperrors.ErrNotFound)
}

func (s *Store) SaveReminder(_ context.Context, reminder domain.Reminder) error {
	s.mu.Lock()
	for _, r := range s.reminders {
		if r.ReminderID == reminder.ReminderID {
			s.mu.Unlock()
			return fmt.Errorf("reminder %s: %w", reminder.ReminderID, apperrors.ErrConflict)
		}
	}
	s.reminders = append(s.reminders, reminder.Clone())
	s.mu.Unlock()

	s.publish(domain.ChangeReminders, []string{reminder.ReminderID})
	return nil
}

func (s *Store) UpdateReminder(_ context.Context, reminder domain.Reminder) error {
	s.mu.Lock()
	found := false
	for i, r := range s.reminders {
		if r.ReminderID == reminder.ReminderID {
			s.reminders[i] = reminder.Clone()
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return fmt.Errorf("reminder %s: %w", reminder.ReminderID, apperrors.ErrNotFound)
	}

	s.publish(domain.ChangeReminders, []string{reminder.ReminderID})
	return nil
}

// ModifyReminder applies fn to one reminder under a single write lock and
// returns the stored result.
func (s *Store) ModifyReminder(_ context.Context, reminderID string, fn func(domain.Reminder) domain.Reminder) (*domain.Reminder, error) {
	s.mu.Lock()
	var updated *domain.Reminder
	for i, r := range s.reminders {
		if r.ReminderID == reminderID {
			next := fn(r.Clone())
			next.ReminderID = reminderID
			s.reminders[i] = next.Clone()
			updated = &next
			break
		}
	}
	s.mu.Unlock()
	if updated == nil {
		return nil, fmt.Errorf("reminder %s: %w", reminderID, apperrors.ErrNotFound)
	}

	s.publish(domain.ChangeReminders, []string{reminderID})
	return updated, nil
}

// --- reference data ---

func (s *Store) ListCoworkers(_ context.Context) ([]domain.Coworker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Coworker, len(s.coworkers))
	copy(out, s.coworkers)
	return out, nil
}

func (s *Store) FindCoworkerByID(_ context.Context, coworkerID string) (*domain.Coworker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.coworkers {
		if c.CoworkerID == coworkerID {
			cw := c
			return &cw, nil
		}
	}
	return nil, fmt.Errorf("coworker %s: %w", coworkerID, apperrors.ErrNotFound)
}

func (s *Store) ListCollectionAlerts(_ context.Context) ([]domain.CollectionAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CollectionAlert, len(s.alerts))
	for i, a := range s.alerts {
		a.Reasons = append([]domain.AlertReason(nil), a.Reasons...)
		out[i] = a
	}
	return out, nil
}

func (s *Store) Series(_ context.Context, granularity string) ([]domain.PerformancePoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	points, ok := s.series[granularity]
	if !ok {
		return nil, fmt.Errorf("series %q: %w", granularity, apperrors.ErrNotFound)
	}
	out := make([]domain.PerformancePoint, len(points))
	copy(out, points)
	return out, nil
}
