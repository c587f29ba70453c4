package handlers_test

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/dashboard"
	"github.com/SscSPs/backoffice_app/internal/core/dialog"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/ledger"
	"github.com/SscSPs/backoffice_app/internal/core/performance"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/rules"
	"github.com/SscSPs/backoffice_app/internal/core/selection"
	"github.com/SscSPs/backoffice_app/internal/core/toast"
	"github.com/stretchr/testify/mock"
)

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

func (m *MockOrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderService) GetOrderDetail(ctx context.Context, orderID string) (*domain.OrderDetail, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderDetail), args.Error(1)
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

func (m *MockLedgerService) BuildLedger(ctx context.Context, params ledger.Params) (*portssvc.LedgerResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.LedgerResult), args.Error(1)
}

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

func invoicesResult(args mock.Arguments) ([]domain.Invoice, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) UpdateStatus(ctx context.Context, invoiceIDs []string, payload rules.StatusPayload, actor string) ([]domain.Invoice, error) {
	return invoicesResult(m.Called(ctx, invoiceIDs, payload, actor))
}

func (m *MockInvoiceService) LinkEvent(ctx context.Context, invoiceIDs []string, cmd portssvc.LinkEventCommand, actor string) ([]domain.Invoice, error) {
	return invoicesResult(m.Called(ctx, invoiceIDs, cmd, actor))
}

func (m *MockInvoiceService) UnlinkEvent(ctx context.Context, invoiceID string, actor string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) MarkPaid(ctx context.Context, invoiceIDs []string, actor string) ([]domain.Invoice, error) {
	return invoicesResult(m.Called(ctx, invoiceIDs, actor))
}

func (m *MockInvoiceService) Dispute(ctx context.Context, invoiceIDs []string, reason string, actor string) ([]domain.Invoice, error) {
	return invoicesResult(m.Called(ctx, invoiceIDs, reason, actor))
}

func (m *MockInvoiceService) Audit(ctx context.Context, invoiceIDs []string, note string, actor string) ([]domain.Invoice, error) {
	return invoicesResult(m.Called(ctx, invoiceIDs, note, actor))
}

// --- Mock ViewService ---
type MockViewService struct {
	mock.Mock
}

var _ portssvc.ViewSvcFacade = (*MockViewService)(nil)

func viewStateResult(args mock.Arguments) (*portssvc.ViewState, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.ViewState), args.Error(1)
}

func snapshotResult(args mock.Arguments) (*dialog.Snapshot, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dialog.Snapshot), args.Error(1)
}

func (m *MockViewService) CreateView(ctx context.Context, params ledger.Params) (*portssvc.ViewState, error) {
	return viewStateResult(m.Called(ctx, params))
}

func (m *MockViewService) GetView(ctx context.Context, viewID string) (*portssvc.ViewState, error) {
	return viewStateResult(m.Called(ctx, viewID))
}

func (m *MockViewService) SetParams(ctx context.Context, viewID string, params ledger.Params) (*portssvc.ViewState, error) {
	return viewStateResult(m.Called(ctx, viewID, params))
}

func (m *MockViewService) Ledger(ctx context.Context, viewID string) (*portssvc.LedgerView, error) {
	args := m.Called(ctx, viewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.LedgerView), args.Error(1)
}

func (m *MockViewService) Toggle(ctx context.Context, viewID string, kind selection.Kind, id string) (*portssvc.ViewState, error) {
	return viewStateResult(m.Called(ctx, viewID, kind, id))
}

func (m *MockViewService) ToggleAll(ctx context.Context, viewID string, kind selection.Kind) (*portssvc.ViewState, error) {
	return viewStateResult(m.Called(ctx, viewID, kind))
}

func (m *MockViewService) ClearSelection(ctx context.Context, viewID string) (*portssvc.ViewState, error) {
	return viewStateResult(m.Called(ctx, viewID))
}

func (m *MockViewService) EffectiveSelection(ctx context.Context, viewID string) ([]string, error) {
	args := m.Called(ctx, viewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockViewService) OpenDialog(ctx context.Context, viewID string, kind dialog.Kind) (*dialog.Snapshot, error) {
	return snapshotResult(m.Called(ctx, viewID, kind))
}

func (m *MockViewService) UpdateDraft(ctx context.Context, viewID string, patch dialog.Patch) (*dialog.Snapshot, error) {
	return snapshotResult(m.Called(ctx, viewID, patch))
}

func (m *MockViewService) SubmitDialog(ctx context.Context, viewID string, actor string) (*portssvc.ViewState, error) {
	return viewStateResult(m.Called(ctx, viewID, actor))
}

func (m *MockViewService) CancelDialog(ctx context.Context, viewID string) (*dialog.Snapshot, error) {
	return snapshotResult(m.Called(ctx, viewID))
}

func (m *MockViewService) GetDialog(ctx context.Context, viewID string) (*dialog.Snapshot, error) {
	return snapshotResult(m.Called(ctx, viewID))
}

func (m *MockViewService) CurrentToast(ctx context.Context, viewID string) (*toast.Toast, error) {
	args := m.Called(ctx, viewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*toast.Toast), args.Error(1)
}

func (m *MockViewService) DismissToast(ctx context.Context, viewID string) error {
	return m.Called(ctx, viewID).Error(0)
}

// --- Mock ReminderService ---
type MockReminderService struct {
	mock.Mock
}

var _ portssvc.ReminderSvcFacade = (*MockReminderService)(nil)

func (m *MockReminderService) ListReminders(ctx context.Context, filter dashboard.ReminderFilter) ([]domain.Reminder, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reminder), args.Error(1)
}

func (m *MockReminderService) CreateReminder(ctx context.Context, draft portssvc.ReminderDraft, actor string) (*domain.Reminder, error) {
	args := m.Called(ctx, draft, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}

func (m *MockReminderService) ToggleDone(ctx context.Context, reminderID string, actor string) (*domain.Reminder, error) {
	args := m.Called(ctx, reminderID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

var _ portssvc.DashboardSvc = (*MockDashboardService)(nil)

func (m *MockDashboardService) Summary(ctx context.Context, query portssvc.DashboardQuery) (*portssvc.DashboardSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.DashboardSummary), args.Error(1)
}

// --- Mock PerformanceService ---
type MockPerformanceService struct {
	mock.Mock
}

var _ portssvc.PerformanceSvc = (*MockPerformanceService)(nil)

func (m *MockPerformanceService) Chart(ctx context.Context, granularity performance.Granularity, metric performance.Metric) (*performance.Chart, error) {
	args := m.Called(ctx, granularity, metric)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*performance.Chart), args.Error(1)
}
