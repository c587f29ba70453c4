package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/dashboard"
	"github.com/SscSPs/backoffice_app/internal/core/dialog"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/ledger"
	"github.com/SscSPs/backoffice_app/internal/core/performance"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/rules"
	"github.com/SscSPs/backoffice_app/internal/core/selection"
	"github.com/SscSPs/backoffice_app/internal/handlers"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type fakeChanges struct {
	events []domain.ChangeEvent
}

func (f *fakeChanges) Subscribe(_ context.Context) <-chan domain.ChangeEvent {
	ch := make(chan domain.ChangeEvent, len(f.events))
	for _, evt := range f.events {
		ch <- evt
	}
	close(ch)
	return ch
}

// streamRecorder adds the CloseNotify gin's Stream needs.
type streamRecorder struct {
	*httptest.ResponseRecorder
}

func (r *streamRecorder) CloseNotify() <-chan bool {
	return make(chan bool)
}

type HandlersTestSuite struct {
	suite.Suite
	router      *gin.Engine
	orders      *MockOrderService
	ledger      *MockLedgerService
	invoices    *MockInvoiceService
	views       *MockViewService
	reminders   *MockReminderService
	dashboard   *MockDashboardService
	performance *MockPerformanceService
	changes     *fakeChanges
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.orders = new(MockOrderService)
	suite.ledger = new(MockLedgerService)
	suite.invoices = new(MockInvoiceService)
	suite.views = new(MockViewService)
	suite.reminders = new(MockReminderService)
	suite.dashboard = new(MockDashboardService)
	suite.performance = new(MockPerformanceService)
	suite.changes = &fakeChanges{}

	container := &portssvc.ServiceContainer{
		Order:       suite.orders,
		Ledger:      suite.ledger,
		Invoice:     suite.invoices,
		View:        suite.views,
		Dashboard:   suite.dashboard,
		Reminder:    suite.reminders,
		Performance: suite.performance,
		Changes:     suite.changes,
	}
	cfg := &config.Config{IsProduction: true, DefaultUserID: "u-amy"}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.orders.AssertExpectations(suite.T())
	suite.ledger.AssertExpectations(suite.T())
	suite.invoices.AssertExpectations(suite.T())
	suite.views.AssertExpectations(suite.T())
	suite.reminders.AssertExpectations(suite.T())
	suite.dashboard.AssertExpectations(suite.T())
	suite.performance.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestGetOrderDetail() {
	detail := &domain.OrderDetail{
		Order:       domain.Order{OrderID: "o-1250037", OrderNumber: "1250037"},
		Invoices:    []domain.Invoice{},
		OpenBalance: decimal.RequireFromString("4467.55"),
	}
	suite.orders.On("GetOrderDetail", mock.Anything, "o-1250037").Return(detail, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/orders/o-1250037", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp domain.OrderDetail
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("1250037", resp.Order.OrderNumber)
	suite.True(resp.OpenBalance.Equal(detail.OpenBalance))
}

func (suite *HandlersTestSuite) TestGetOrderDetail_NotFound() {
	suite.orders.On("GetOrderDetail", mock.Anything, "o-404").
		Return(nil, fmt.Errorf("order o-404: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/orders/o-404", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestGetLedger_ParsesQuery() {
	expected := ledger.ParseParams(ledger.RawParams{Stage: "deposited", OrderSort: "rep", OrderDir: "asc"})
	suite.ledger.On("BuildLedger", mock.Anything, expected).
		Return(&portssvc.LedgerResult{Params: expected, Groups: []ledger.Group{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger?stage=deposited&orderSort=rep&orderDir=asc", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestGetLedger_BadDirection() {
	w := suite.do(http.MethodGet, "/api/v1/ledger?orderDir=sideways", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestUpdateStatus() {
	payload := rules.StatusPayload{HoldingStatus: domain.HoldingTheyHaveCheck, HoldingSubStatus: domain.SubStatusPickup}
	updated := []domain.Invoice{{InvoiceID: "inv-1009", HoldingStatus: domain.HoldingTheyHaveCheck}}
	suite.invoices.On("UpdateStatus", mock.Anything, []string{"inv-1009"}, payload, "u-jake").Return(updated, nil).Once()

	body := map[string]any{
		"invoiceIDs":       []string{"inv-1009"},
		"holdingStatus":    "they have check",
		"holdingSubStatus": "Pickup",
	}
	w := suite.do(http.MethodPost, "/api/v1/invoices/status", body, middleware.ActorHeader, "u-jake")
	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.Count)
}

func (suite *HandlersTestSuite) TestUpdateStatus_StatusOnly() {
	payload := rules.StatusPayload{Status: domain.StatusPartial}
	updated := []domain.Invoice{{InvoiceID: "inv-1009", Status: domain.StatusPartial, HoldingStatus: domain.HoldingNeedsEndorsement}}
	suite.invoices.On("UpdateStatus", mock.Anything, []string{"inv-1009"}, payload, "u-amy").Return(updated, nil).Once()

	body := map[string]any{"invoiceIDs": []string{"inv-1009"}, "status": "Partial"}
	w := suite.do(http.MethodPost, "/api/v1/invoices/status", body)
	suite.Equal(http.StatusOK, w.Code)
	suite.invoices.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestUpdateStatus_Invalid() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "no invoices", body: map[string]any{"invoiceIDs": []string{}, "holdingStatus": "None"}},
		{name: "unknown status", body: map[string]any{"invoiceIDs": []string{"inv-1009"}, "status": "Lost"}},
		{name: "unknown holding", body: map[string]any{"invoiceIDs": []string{"inv-1009"}, "holdingStatus": "Bank has check"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/invoices/status", tt.body)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.invoices.AssertNotCalled(suite.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestLinkEvent_NewNeedsTitle() {
	body := map[string]any{"invoiceIDs": []string{"inv-1009"}, "mode": "new", "start": "2026-02-01T10:00:00Z"}
	w := suite.do(http.MethodPost, "/api/v1/invoices/events", body)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestLinkEvent_Existing() {
	cmd := portssvc.LinkEventCommand{
		Mode:     domain.EventModeExisting,
		EventID:  "ev-502",
		TaskType: domain.TaskEndorseCheck,
	}
	suite.invoices.On("LinkEvent", mock.Anything, []string{"inv-1009", "inv-1010"}, cmd, "u-amy").
		Return([]domain.Invoice{{InvoiceID: "inv-1009"}, {InvoiceID: "inv-1010"}}, nil).Once()

	body := map[string]any{
		"invoiceIDs": []string{"inv-1009", "inv-1010"},
		"mode":       "existing",
		"eventID":    "ev-502",
		"taskType":   "Endorse Check",
	}
	w := suite.do(http.MethodPost, "/api/v1/invoices/events", body)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestMarkPaid_UnknownInvoice() {
	suite.invoices.On("MarkPaid", mock.Anything, []string{"inv-404"}, "u-amy").
		Return(nil, fmt.Errorf("invoice inv-404: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/mark-paid", map[string]any{"invoiceIDs": []string{"inv-404"}})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestDispute_NeedsReason() {
	w := suite.do(http.MethodPost, "/api/v1/invoices/dispute", map[string]any{"invoiceIDs": []string{"inv-1016"}})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestCreateView_DefaultParams() {
	state := &portssvc.ViewState{ViewID: "view-1", Params: ledger.DefaultParams()}
	suite.views.On("CreateView", mock.Anything, ledger.DefaultParams()).Return(state, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/views", nil)
	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"viewID":"view-1"`)
}

func (suite *HandlersTestSuite) TestCreateView_WithParams() {
	expected := ledger.ParseParams(ledger.RawParams{Rep: "JK"})
	suite.views.On("CreateView", mock.Anything, expected).Return(&portssvc.ViewState{ViewID: "view-2"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/views", map[string]any{"params": map[string]string{"rep": "JK"}})
	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlersTestSuite) TestGetView_NotFound() {
	suite.views.On("GetView", mock.Anything, "nope").
		Return(nil, fmt.Errorf("view nope: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/views/nope", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestToggle_AcceptsPluralKind() {
	suite.views.On("Toggle", mock.Anything, "view-1", selection.KindInvoice, "inv-1009").
		Return(&portssvc.ViewState{ViewID: "view-1", SelectedInvoices: []string{"inv-1009"}}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/views/view-1/selection/toggle", map[string]string{"kind": "invoices", "id": "inv-1009"})
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestToggle_UnknownKind() {
	w := suite.do(http.MethodPost, "/api/v1/views/view-1/selection/toggle", map[string]string{"kind": "event", "id": "ev-501"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestEffectiveSelection() {
	suite.views.On("EffectiveSelection", mock.Anything, "view-1").Return([]string{"inv-1009", "inv-1010"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/views/view-1/selection/effective", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"invoiceIDs":["inv-1009","inv-1010"],"count":2}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestOpenDialog_Conflict() {
	suite.views.On("OpenDialog", mock.Anything, "view-1", dialog.KindAudit).
		Return(nil, fmt.Errorf("%w: dialog already open", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodPost, "/api/v1/views/view-1/dialog", map[string]string{"kind": "audit"})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestOpenDialog_UnknownKind() {
	w := suite.do(http.MethodPost, "/api/v1/views/view-1/dialog", map[string]string{"kind": "refund"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestUpdateDraft() {
	reason := "Wrong storage period"
	suite.views.On("UpdateDraft", mock.Anything, "view-1", dialog.Patch{Reason: &reason}).
		Return(&dialog.Snapshot{State: dialog.StateDraft, Kind: dialog.KindDispute}, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/views/view-1/dialog", map[string]string{"reason": reason})
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestSubmitDialog_UsesDefaultActor() {
	suite.views.On("SubmitDialog", mock.Anything, "view-1", "u-amy").
		Return(&portssvc.ViewState{ViewID: "view-1"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/views/view-1/dialog/submit", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestSubmitDialog_InvalidDraft() {
	suite.views.On("SubmitDialog", mock.Anything, "view-1", "u-amy").
		Return(nil, fmt.Errorf("%w: reason is required", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/views/view-1/dialog/submit", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestGetToast_None() {
	suite.views.On("CurrentToast", mock.Anything, "view-1").Return(nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/views/view-1/toast", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlersTestSuite) TestDismissToast() {
	suite.views.On("DismissToast", mock.Anything, "view-1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/views/view-1/toast", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlersTestSuite) TestDashboard_ExpandList() {
	query := portssvc.DashboardQuery{
		Expand:    []string{portssvc.WidgetStorageGap, portssvc.WidgetReminders},
		Reminders: dashboard.ReminderFilter{Scope: dashboard.ScopeAll, Actor: "u-tom"},
	}
	suite.dashboard.On("Summary", mock.Anything, query).Return(&portssvc.DashboardSummary{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/dashboard?expand=storage-gap,reminders&scope=all", nil, middleware.ActorHeader, "u-tom")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestPerformance() {
	chart := &performance.Chart{Granularity: performance.Week, Metric: performance.Billed}
	suite.performance.On("Chart", mock.Anything, performance.Week, performance.Billed).Return(chart, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/performance?granularity=week&metric=billed", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestPerformance_UnknownGranularity() {
	w := suite.do(http.MethodGet, "/api/v1/performance?granularity=hour", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestCreateReminder() {
	due := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	draft := portssvc.ReminderDraft{Section: "storage", Title: "Renew storage", DueAt: &due}
	suite.reminders.On("CreateReminder", mock.Anything, draft, "u-amy").
		Return(&domain.Reminder{ReminderID: "r-new", Title: "Renew storage"}, nil).Once()

	body := map[string]string{"section": "storage", "title": "Renew storage", "dueAt": "2026-01-20"}
	w := suite.do(http.MethodPost, "/api/v1/reminders", body)
	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlersTestSuite) TestCreateReminder_BadDueDate() {
	w := suite.do(http.MethodPost, "/api/v1/reminders", map[string]string{"title": "x", "dueAt": "next week"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestListReminders_MineByDefault() {
	filter := dashboard.ReminderFilter{Scope: dashboard.ScopeMine, Actor: "u-amy"}
	suite.reminders.On("ListReminders", mock.Anything, filter).Return([]domain.Reminder{{ReminderID: "r-1"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reminders", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestStream() {
	suite.changes.events = []domain.ChangeEvent{{Kind: domain.ChangeInvoices, IDs: []string{"inv-1009"}}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stream", nil)
	w := &streamRecorder{httptest.NewRecorder()}
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	suite.True(strings.Contains(body, "event:change"), body)
	suite.Contains(body, `"inv-1009"`)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
