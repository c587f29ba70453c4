package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/dialog"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/ledger"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/selection"
	"github.com/SscSPs/backoffice_app/internal/core/toast"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	// DefaultToastTTL is how long a confirmation stays visible.
	DefaultToastTTL = 5 * time.Second
	// DefaultViewIdleTTL is how long an untouched view is kept.
	DefaultViewIdleTTL = 30 * time.Minute
)

// view is one ledger session. Its lock serializes every operation on it.
type view struct {
	mu     sync.Mutex
	id     string
	params ledger.Params
	sel    selection.Selection
	dlg    *dialog.Machine
	toast  *toast.Slot

	// guarded by viewService.mu
	lastSeen time.Time
}

type viewService struct {
	BaseService
	orderRepo   portsrepo.OrderReader
	invoiceRepo portsrepo.InvoiceReader
	invoices    portssvc.InvoiceWriterSvc
	validate    *validator.Validate
	toastTTL    time.Duration
	idleTTL     time.Duration
	now         func() time.Time

	mu    sync.Mutex
	views map[string]*view
}

// ViewServiceOption is a functional option for configuring the view service
type ViewServiceOption func(*viewService)

// WithToastTTL sets how long confirmation toasts live.
func WithToastTTL(ttl time.Duration) ViewServiceOption {
	return func(s *viewService) {
		if ttl > 0 {
			s.toastTTL = ttl
		}
	}
}

// WithViewIdleTTL sets how long a view may go unused before it is dropped.
func WithViewIdleTTL(ttl time.Duration) ViewServiceOption {
	return func(s *viewService) {
		if ttl > 0 {
			s.idleTTL = ttl
		}
	}
}

// WithViewClock overrides the clock used for toast and view expiry.
func WithViewClock(now func() time.Time) ViewServiceOption {
	return func(s *viewService) {
		s.now = now
	}
}

// WithDraftValidator shares a validator between all dialog machines.
func WithDraftValidator(v *validator.Validate) ViewServiceOption {
	return func(s *viewService) {
		s.validate = v
	}
}

// NewViewService creates the service holding ledger sessions. Every session
// reads business data from the shared repositories and submits dialog actions
// through invoices.
func NewViewService(orderRepo portsrepo.OrderReader, invoiceRepo portsrepo.InvoiceReader, invoices portssvc.InvoiceWriterSvc, options ...ViewServiceOption) portssvc.ViewSvcFacade {
	svc := &viewService{
		orderRepo:   orderRepo,
		invoiceRepo: invoiceRepo,
		invoices:    invoices,
		toastTTL:    DefaultToastTTL,
		idleTTL:     DefaultViewIdleTTL,
		now:         time.Now,
		views:       map[string]*view{},
	}
	for _, option := range options {
		option(svc)
	}
	if svc.validate == nil {
		svc.validate = dialog.NewValidator()
	}
	return svc
}

var _ portssvc.ViewSvcFacade = (*viewService)(nil)

func (s *viewService) CreateView(ctx context.Context, params ledger.Params) (*portssvc.ViewState, error) {
	v := &view{
		id:     uuid.NewString(),
		params: params,
		sel:    selection.Empty(),
		dlg:    dialog.New(s.validate),
		toast:  toast.NewSlot(s.toastTTL, s.now),
	}
	s.mu.Lock()
	now := s.now()
	s.evictIdleLocked(ctx, now)
	v.lastSeen = now
	s.views[v.id] = v
	s.mu.Unlock()

	s.LogInfo(ctx, "View created", slog.String("view_id", v.id))
	v.mu.Lock()
	defer v.mu.Unlock()
	return s.state(v), nil
}

// withView runs fn with the view locked.
func (s *viewService) withView(ctx context.Context, viewID string, fn func(v *view) error) error {
	s.mu.Lock()
	now := s.now()
	s.evictIdleLocked(ctx, now)
	v, ok := s.views[viewID]
	if ok {
		v.lastSeen = now
	}
	s.mu.Unlock()
	if !ok {
		s.LogDebug(ctx, "View not found", slog.String("view_id", viewID))
		return fmt.Errorf("view %s: %w", viewID, apperrors.ErrNotFound)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return fn(v)
}

// evictIdleLocked drops views unused for longer than the idle TTL.
// s.mu must be held for writing.
func (s *viewService) evictIdleLocked(ctx context.Context, now time.Time) {
	for id, v := range s.views {
		if now.Sub(v.lastSeen) > s.idleTTL {
			delete(s.views, id)
			s.LogDebug(ctx, "View expired", slog.String("view_id", id))
		}
	}
}

// refresh builds the view's ledger from current data and prunes the selection
// to visible orders and visible open invoices.
func (s *viewService) refresh(ctx context.Context, v *view) ([]ledger.Group, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders for view", slog.String("view_id", v.id))
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices for view", slog.String("view_id", v.id))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	groups := ledger.Build(orders, invoices, v.params)
	v.sel = v.sel.Prune(visibleOpenInvoiceIDs(groups), ledger.VisibleOrderIDs(groups))
	return groups, nil
}

func visibleOpenInvoiceIDs(groups []ledger.Group) []string {
	ids := []string{}
	for _, g := range groups {
		ids = append(ids, ledger.OpenInvoiceIDs(g.Invoices)...)
	}
	return ids
}

func (s *viewService) state(v *view) *portssvc.ViewState {
	st := &portssvc.ViewState{
		ViewID:           v.id,
		Params:           v.params,
		SelectedOrders:   v.sel.OrderIDs(),
		SelectedInvoices: v.sel.InvoiceIDs(),
		Dialog:           v.dlg.Snapshot(),
	}
	if t, ok := v.toast.Current(); ok {
		st.Toast = &t
	}
	return st
}

// stateAfterRefresh is the common tail of every read.
func (s *viewService) stateAfterRefresh(ctx context.Context, viewID string, mutate func(v *view, groups []ledger.Group) error) (*portssvc.ViewState, error) {
	var out *portssvc.ViewState
	err := s.withView(ctx, viewID, func(v *view) error {
		groups, err := s.refresh(ctx, v)
		if err != nil {
			return err
		}
		if mutate != nil {
			if err := mutate(v, groups); err != nil {
				return err
			}
		}
		out = s.state(v)
		return nil
	})
	return out, err
}

func (s *viewService) GetView(ctx context.Context, viewID string) (*portssvc.ViewState, error) {
	return s.stateAfterRefresh(ctx, viewID, nil)
}

func (s *viewService) SetParams(ctx context.Context, viewID string, params ledger.Params) (*portssvc.ViewState, error) {
	var out *portssvc.ViewState
	err := s.withView(ctx, viewID, func(v *view) error {
		v.params = params
		if _, err := s.refresh(ctx, v); err != nil {
			return err
		}
		out = s.state(v)
		return nil
	})
	if err == nil {
		s.LogDebug(ctx, "View params changed", slog.String("view_id", viewID), slog.String("stage", string(params.Stage)))
	}
	return out, err
}

func (s *viewService) Ledger(ctx context.Context, viewID string) (*portssvc.LedgerView, error) {
	var out *portssvc.LedgerView
	err := s.withView(ctx, viewID, func(v *view) error {
		groups, err := s.refresh(ctx, v)
		if err != nil {
			return err
		}
		out = &portssvc.LedgerView{
			ViewID:    v.id,
			Params:    v.params,
			Groups:    groups,
			Totals:    ledger.Summarize(groups),
			Effective: v.sel.Effective(groups),
			State:     *s.state(v),
		}
		return nil
	})
	return out, err
}

func (s *viewService) Toggle(ctx context.Context, viewID string, kind selection.Kind, id string) (*portssvc.ViewState, error) {
	return s.stateAfterRefresh(ctx, viewID, func(v *view, groups []ledger.Group) error {
		var selectable []string
		switch kind {
		case selection.KindOrder:
			selectable = ledger.VisibleOrderIDs(groups)
		case selection.KindInvoice:
			selectable = visibleOpenInvoiceIDs(groups)
		default:
			return fmt.Errorf("%w: unknown selection kind %q", apperrors.ErrValidation, kind)
		}
		if !slices.Contains(selectable, id) {
			return fmt.Errorf("%w: %s %s is not selectable in this view", apperrors.ErrValidation, kind, id)
		}
		v.sel = v.sel.ToggleOne(kind, id)
		return nil
	})
}

func (s *viewService) ToggleAll(ctx context.Context, viewID string, kind selection.Kind) (*portssvc.ViewState, error) {
	return s.stateAfterRefresh(ctx, viewID, func(v *view, groups []ledger.Group) error {
		switch kind {
		case selection.KindOrder:
			v.sel = v.sel.ToggleAll(kind, ledger.VisibleOrderIDs(groups))
		case selection.KindInvoice:
			v.sel = v.sel.ToggleAll(kind, visibleOpenInvoiceIDs(groups))
		default:
			return fmt.Errorf("%w: unknown selection kind %q", apperrors.ErrValidation, kind)
		}
		return nil
	})
}

func (s *viewService) ClearSelection(ctx context.Context, viewID string) (*portssvc.ViewState, error) {
	return s.stateAfterRefresh(ctx, viewID, func(v *view, _ []ledger.Group) error {
		v.sel = v.sel.Clear()
		return nil
	})
}

func (s *viewService) EffectiveSelection(ctx context.Context, viewID string) ([]string, error) {
	var out []string
	err := s.withView(ctx, viewID, func(v *view) error {
		groups, err := s.refresh(ctx, v)
		if err != nil {
			return err
		}
		out = v.sel.Effective(groups)
		return nil
	})
	return out, err
}

// OpenDialog opens a dialog over the effective selection. Status and event
// drafts start from the first target invoice.
func (s *viewService) OpenDialog(ctx context.Context, viewID string, kind dialog.Kind) (*dialog.Snapshot, error) {
	var out *dialog.Snapshot
	err := s.withView(ctx, viewID, func(v *view) error {
		groups, err := s.refresh(ctx, v)
		if err != nil {
			return err
		}
		targets := v.sel.Effective(groups)
		if len(targets) == 0 {
			return fmt.Errorf("%w: no invoices selected", apperrors.ErrValidation)
		}
		first, order := findTarget(groups, targets[0])

		var draft dialog.Payload
		switch kind {
		case dialog.KindStatusUpdate:
			draft = dialog.NewStatusDraft(first)
		case dialog.KindEventLink:
			draft = dialog.NewEventLinkDraft(first, order)
		case dialog.KindDispute:
			draft = &dialog.DisputeDraft{}
		case dialog.KindAudit:
			draft = &dialog.AuditDraft{}
		case dialog.KindMarkPaid:
			draft = &dialog.MarkPaidDraft{}
		default:
			return fmt.Errorf("%w: unknown dialog kind %q", apperrors.ErrValidation, kind)
		}
		if err := v.dlg.Open(targets, draft); err != nil {
			return err
		}
		snap := v.dlg.Snapshot()
		out = &snap
		return nil
	})
	if err == nil {
		s.LogDebug(ctx, "Dialog opened", slog.String("view_id", viewID), slog.String("kind", string(kind)), slog.Int("targets", len(out.Targets)))
	}
	return out, err
}

func findTarget(groups []ledger.Group, invoiceID string) (*domain.Invoice, *domain.Order) {
	for _, g := range groups {
		for _, inv := range g.Invoices {
			if inv.InvoiceID == invoiceID {
				first := inv.Clone()
				order := g.Order.Clone()
				return &first, &order
			}
		}
	}
	return nil, nil
}

func (s *viewService) UpdateDraft(ctx context.Context, viewID string, patch dialog.Patch) (*dialog.Snapshot, error) {
	return s.dialogOp(ctx, viewID, func(m *dialog.Machine) error { return m.Update(patch) })
}

func (s *viewService) CancelDialog(ctx context.Context, viewID string) (*dialog.Snapshot, error) {
	return s.dialogOp(ctx, viewID, func(m *dialog.Machine) error { return m.Cancel() })
}

func (s *viewService) GetDialog(ctx context.Context, viewID string) (*dialog.Snapshot, error) {
	return s.dialogOp(ctx, viewID, nil)
}

func (s *viewService) dialogOp(ctx context.Context, viewID string, fn func(m *dialog.Machine) error) (*dialog.Snapshot, error) {
	var out *dialog.Snapshot
	err := s.withView(ctx, viewID, func(v *view) error {
		if fn != nil {
			if err := fn(v.dlg); err != nil {
				return err
			}
		}
		snap := v.dlg.Snapshot()
		out = &snap
		return nil
	})
	return out, err
}

// SubmitDialog validates the draft and applies it to its target invoices.
// On success the dialog closes, a confirmation toast is shown and the
// selection is pruned against the new open set. On failure the dialog returns
// to its draft with the error recorded.
func (s *viewService) SubmitDialog(ctx context.Context, viewID string, actor string) (*portssvc.ViewState, error) {
	var out *portssvc.ViewState
	err := s.withView(ctx, viewID, func(v *view) error {
		payload, targets, err := v.dlg.BeginSubmit()
		if err != nil {
			return err
		}

		message, err := s.apply(ctx, payload, targets, actor)
		if err != nil {
			s.LogError(ctx, err, "Dialog submission failed", slog.String("view_id", v.id), slog.String("kind", string(payload.Kind())))
			if ferr := v.dlg.Fail(err); ferr != nil {
				return ferr
			}
			return err
		}
		if err := v.dlg.Complete(); err != nil {
			return err
		}
		v.toast.Show(message, toast.KindSuccess)

		if _, err := s.refresh(ctx, v); err != nil {
			return err
		}
		out = s.state(v)
		s.LogInfo(ctx, "Dialog submitted", slog.String("view_id", v.id), slog.String("kind", string(payload.Kind())), slog.Int("targets", len(targets)))
		return nil
	})
	return out, err
}

func (s *viewService) apply(ctx context.Context, payload dialog.Payload, targets []string, actor string) (string, error) {
	n := len(targets)
	switch d := payload.(type) {
	case *dialog.StatusDraft:
		if _, err := s.invoices.UpdateStatus(ctx, targets, d.Payload(), actor); err != nil {
			return "", err
		}
		return fmt.Sprintf("Status updated for %s", invoiceCount(n)), nil
	case *dialog.EventLinkDraft:
		cmd := portssvc.LinkEventCommand{
			Mode:                d.Mode,
			EventID:             d.EventID,
			Title:               d.Title,
			Start:               d.Start,
			EventType:           d.EventType,
			TaskType:            d.TaskType,
			NotifiedCoworkerIDs: d.NotifiedCoworkerIDs,
		}
		if _, err := s.invoices.LinkEvent(ctx, targets, cmd, actor); err != nil {
			return "", err
		}
		return fmt.Sprintf("Event linked to %s", invoiceCount(n)), nil
	case *dialog.DisputeDraft:
		if _, err := s.invoices.Dispute(ctx, targets, d.Reason, actor); err != nil {
			return "", err
		}
		return fmt.Sprintf("Dispute recorded for %s", invoiceCount(n)), nil
	case *dialog.AuditDraft:
		if _, err := s.invoices.Audit(ctx, targets, d.Note, actor); err != nil {
			return "", err
		}
		return fmt.Sprintf("Audit note added to %s", invoiceCount(n)), nil
	case *dialog.MarkPaidDraft:
		if _, err := s.invoices.MarkPaid(ctx, targets, actor); err != nil {
			return "", err
		}
		return fmt.Sprintf("Marked %s paid", invoiceCount(n)), nil
	}
	return "", fmt.Errorf("%w: unsupported dialog %T", apperrors.ErrValidation, payload)
}

func invoiceCount(n int) string {
	if n == 1 {
		return "1 invoice"
	}
	return fmt.Sprintf("%d invoices", n)
}

func (s *viewService) CurrentToast(ctx context.Context, viewID string) (*toast.Toast, error) {
	var out *toast.Toast
	err := s.withView(ctx, viewID, func(v *view) error {
		if t, ok := v.toast.Current(); ok {
			out = &t
		}
		return nil
	})
	return out, err
}

func (s *viewService) DismissToast(ctx context.Context, viewID string) error {
	return s.withView(ctx, viewID, func(v *view) error {
		v.toast.Dismiss()
		return nil
	})
}
