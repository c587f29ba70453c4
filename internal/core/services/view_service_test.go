package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/adapters/memory"
	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/dialog"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/ledger"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/selection"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type ViewServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	repos    portsrepo.RepositoryProvider
	invoices portssvc.InvoiceSvcFacade
	clock    *fakeClock
	service  portssvc.ViewSvcFacade
}

func (suite *ViewServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repos = memory.NewRepositoryProvider(memory.NewStore())
	suite.invoices = services.NewInvoiceService(suite.repos.InvoiceRepo, suite.repos.EventRepo)
	suite.clock = &fakeClock{t: time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)}
	suite.service = services.NewViewService(
		suite.repos.OrderRepo,
		suite.repos.InvoiceRepo,
		suite.invoices,
		services.WithViewClock(suite.clock.now),
		services.WithToastTTL(5*time.Second),
		services.WithViewIdleTTL(time.Hour),
	)
}

func (suite *ViewServiceTestSuite) newView(params ledger.Params) string {
	state, err := suite.service.CreateView(suite.ctx, params)
	suite.Require().NoError(err)
	return state.ViewID
}

func (suite *ViewServiceTestSuite) toggle(viewID string, kind selection.Kind, id string) *portssvc.ViewState {
	state, err := suite.service.Toggle(suite.ctx, viewID, kind, id)
	suite.Require().NoError(err)
	return state
}

func (suite *ViewServiceTestSuite) TestCreateAndGetView() {
	state, err := suite.service.CreateView(suite.ctx, ledger.DefaultParams())
	suite.Require().NoError(err)
	suite.NotEmpty(state.ViewID)
	suite.Empty(state.SelectedOrders)
	suite.Empty(state.SelectedInvoices)
	suite.Equal(dialog.StateClosed, state.Dialog.State)
	suite.Nil(state.Toast)

	_, err = suite.service.GetView(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ViewServiceTestSuite) TestLedger_Default() {
	viewID := suite.newView(ledger.DefaultParams())
	lv, err := suite.service.Ledger(suite.ctx, viewID)
	suite.Require().NoError(err)
	suite.Len(lv.Groups, 7)
	suite.Equal(7, lv.Totals.Orders)
	suite.Equal(11, lv.Totals.Invoices)
	suite.Empty(lv.Effective)
}

func (suite *ViewServiceTestSuite) TestToggleAll_OnlyVisible() {
	params := ledger.DefaultParams()
	params.Rep = "JK"
	viewID := suite.newView(params)

	suite.toggle(viewID, selection.KindInvoice, "inv-1012")
	state, err := suite.service.ToggleAll(suite.ctx, viewID, selection.KindInvoice)
	suite.Require().NoError(err)
	suite.Equal([]string{"inv-1012", "inv-1013", "inv-1021", "inv-1022"}, state.SelectedInvoices)

	state, err = suite.service.ToggleAll(suite.ctx, viewID, selection.KindInvoice)
	suite.Require().NoError(err)
	suite.Empty(state.SelectedInvoices)

	state, err = suite.service.ToggleAll(suite.ctx, viewID, selection.KindOrder)
	suite.Require().NoError(err)
	suite.Equal([]string{"o-1250041", "o-1250066"}, state.SelectedOrders)
}

func (suite *ViewServiceTestSuite) TestToggle_RejectsHiddenRows() {
	params := ledger.DefaultParams()
	params.Rep = "JK"
	viewID := suite.newView(params)

	_, err := suite.service.Toggle(suite.ctx, viewID, selection.KindInvoice, "inv-1009")
	suite.ErrorIs(err, apperrors.ErrValidation)
	_, err = suite.service.Toggle(suite.ctx, viewID, selection.KindOrder, "o-1250037")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ViewServiceTestSuite) TestSetParams_PrunesSelection() {
	viewID := suite.newView(ledger.DefaultParams())
	suite.toggle(viewID, selection.KindInvoice, "inv-1009")
	suite.toggle(viewID, selection.KindInvoice, "inv-1012")
	suite.toggle(viewID, selection.KindOrder, "o-1250037")

	params := ledger.DefaultParams()
	params.Rep = "JK"
	state, err := suite.service.SetParams(suite.ctx, viewID, params)
	suite.Require().NoError(err)
	suite.Equal([]string{"inv-1012"}, state.SelectedInvoices)
	suite.Empty(state.SelectedOrders)
}

func (suite *ViewServiceTestSuite) TestIdleViewsExpire() {
	idle := suite.newView(ledger.DefaultParams())
	busy := suite.newView(ledger.DefaultParams())

	suite.clock.advance(40 * time.Minute)
	_, err := suite.service.GetView(suite.ctx, busy)
	suite.Require().NoError(err)

	suite.clock.advance(40 * time.Minute)
	_, err = suite.service.GetView(suite.ctx, idle)
	suite.ErrorIs(err, apperrors.ErrNotFound, "idle for 80 minutes")

	_, err = suite.service.GetView(suite.ctx, busy)
	suite.NoError(err, "touched 40 minutes ago")

	suite.clock.advance(61 * time.Minute)
	fresh := suite.newView(ledger.DefaultParams())
	_, err = suite.service.Toggle(suite.ctx, busy, selection.KindOrder, "o-1250037")
	suite.ErrorIs(err, apperrors.ErrNotFound, "creating a view sweeps expired ones")
	_, err = suite.service.GetView(suite.ctx, fresh)
	suite.NoError(err)
}

func (suite *ViewServiceTestSuite) TestEffectiveSelection() {
	viewID := suite.newView(ledger.DefaultParams())
	suite.toggle(viewID, selection.KindOrder, "o-1250037")

	ids, err := suite.service.EffectiveSelection(suite.ctx, viewID)
	suite.Require().NoError(err)
	suite.Equal([]string{"inv-1009", "inv-1010"}, ids, "orders expand to their open invoices")

	suite.toggle(viewID, selection.KindInvoice, "inv-1013")
	ids, err = suite.service.EffectiveSelection(suite.ctx, viewID)
	suite.Require().NoError(err)
	suite.Equal([]string{"inv-1013"}, ids, "explicit invoices win")

	state, err := suite.service.ClearSelection(suite.ctx, viewID)
	suite.Require().NoError(err)
	suite.Empty(state.SelectedOrders)
	suite.Empty(state.SelectedInvoices)
}

func (suite *ViewServiceTestSuite) TestOpenDialog_NeedsSelection() {
	viewID := suite.newView(ledger.DefaultParams())
	_, err := suite.service.OpenDialog(suite.ctx, viewID, dialog.KindAudit)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ViewServiceTestSuite) TestOpenDialog_OnlyOneAtATime() {
	viewID := suite.newView(ledger.DefaultParams())
	suite.toggle(viewID, selection.KindInvoice, "inv-1013")

	_, err := suite.service.OpenDialog(suite.ctx, viewID, dialog.KindAudit)
	suite.Require().NoError(err)
	_, err = suite.service.OpenDialog(suite.ctx, viewID, dialog.KindDispute)
	suite.ErrorIs(err, apperrors.ErrConflict)

	snap, err := suite.service.CancelDialog(suite.ctx, viewID)
	suite.Require().NoError(err)
	suite.Equal(dialog.StateClosed, snap.State)
}

func (suite *ViewServiceTestSuite) TestStatusDialog_StartsFromFirstTarget() {
	viewID := suite.newView(ledger.DefaultParams())
	suite.toggle(viewID, selection.KindInvoice, "inv-1010")

	snap, err := suite.service.OpenDialog(suite.ctx, viewID, dialog.KindStatusUpdate)
	suite.Require().NoError(err)
	draft, ok := snap.Draft.(*dialog.StatusDraft)
	suite.Require().True(ok)
	suite.Equal(domain.HoldingTheyHaveCheck, draft.HoldingStatus)
	suite.Equal(domain.SubStatusMailing, draft.HoldingSubStatus)
	suite.True(draft.ShowSubStatus)

	holding := domain.HoldingPAHasCheck
	snap, err = suite.service.UpdateDraft(suite.ctx, viewID, dialog.Patch{HoldingStatus: &holding})
	suite.Require().NoError(err)
	draft = snap.Draft.(*dialog.StatusDraft)
	suite.False(draft.ShowSubStatus)

	state, err := suite.service.SubmitDialog(suite.ctx, viewID, "u-amy")
	suite.Require().NoError(err)
	suite.Equal(dialog.StateClosed, state.Dialog.State)
	suite.Require().NotNil(state.Toast)
	suite.Equal("Status updated for 1 invoice", state.Toast.Message)
	suite.Equal([]string{"inv-1010"}, state.SelectedInvoices, "still open, so still selected")

	inv, err := suite.repos.InvoiceRepo.FindInvoiceByID(suite.ctx, "inv-1010")
	suite.Require().NoError(err)
	suite.Equal(domain.HoldingPAHasCheck, inv.HoldingStatus)
	suite.Equal(domain.SubStatusNone, inv.HoldingSubStatus)
}

func (suite *ViewServiceTestSuite) TestEventLinkDialog_INV1009() {
	viewID := suite.newView(ledger.DefaultParams())
	suite.toggle(viewID, selection.KindInvoice, "inv-1009")

	snap, err := suite.service.OpenDialog(suite.ctx, viewID, dialog.KindEventLink)
	suite.Require().NoError(err)
	draft, ok := snap.Draft.(*dialog.EventLinkDraft)
	suite.Require().True(ok)
	suite.Equal(domain.TaskEndorseCheck, draft.TaskType)
	suite.Equal(domain.EventMeeting, draft.EventType)
	suite.Equal("Meeting — Endorse Check — Cotton – Hackettstown, NJ (1250037)", draft.Title)

	_, err = suite.service.SubmitDialog(suite.ctx, viewID, "u-amy")
	suite.ErrorIs(err, apperrors.ErrValidation, "a new event needs a start")

	start := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	_, err = suite.service.UpdateDraft(suite.ctx, viewID, dialog.Patch{Start: &start})
	suite.Require().NoError(err)

	state, err := suite.service.SubmitDialog(suite.ctx, viewID, "u-amy")
	suite.Require().NoError(err)
	suite.Equal("Event linked to 1 invoice", state.Toast.Message)

	inv, err := suite.repos.InvoiceRepo.FindInvoiceByID(suite.ctx, "inv-1009")
	suite.Require().NoError(err)
	suite.Require().NotNil(inv.LinkedEvent)
	suite.Equal(draft.Title, inv.LinkedEvent.Title)
	suite.Equal(time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), *inv.ReminderDate)
}

func (suite *ViewServiceTestSuite) TestMarkPaidDialog_PrunesAndToasts() {
	viewID := suite.newView(ledger.DefaultParams())
	suite.toggle(viewID, selection.KindOrder, "o-1250037")

	snap, err := suite.service.OpenDialog(suite.ctx, viewID, dialog.KindMarkPaid)
	suite.Require().NoError(err)
	suite.Equal([]string{"inv-1009", "inv-1010"}, snap.Targets)

	_, err = suite.service.SubmitDialog(suite.ctx, viewID, "u-amy")
	suite.ErrorIs(err, apperrors.ErrValidation, "confirmation is required")
	snap, err = suite.service.GetDialog(suite.ctx, viewID)
	suite.Require().NoError(err)
	suite.Equal(dialog.StateDraft, snap.State)

	confirmed := true
	_, err = suite.service.UpdateDraft(suite.ctx, viewID, dialog.Patch{Confirmed: &confirmed})
	suite.Require().NoError(err)
	state, err := suite.service.SubmitDialog(suite.ctx, viewID, "u-amy")
	suite.Require().NoError(err)
	suite.Equal("Marked 2 invoices paid", state.Toast.Message)
	suite.Empty(state.SelectedOrders, "the order has no open invoice left and leaves the open stage")

	lv, err := suite.service.Ledger(suite.ctx, viewID)
	suite.Require().NoError(err)
	suite.Equal(6, lv.Totals.Orders)
}

func (suite *ViewServiceTestSuite) TestToastExpiresAndDismisses() {
	viewID := suite.newView(ledger.DefaultParams())
	suite.toggle(viewID, selection.KindInvoice, "inv-1013")
	_, err := suite.service.OpenDialog(suite.ctx, viewID, dialog.KindAudit)
	suite.Require().NoError(err)
	note := "Checked with adjuster"
	_, err = suite.service.UpdateDraft(suite.ctx, viewID, dialog.Patch{Note: &note})
	suite.Require().NoError(err)
	_, err = suite.service.SubmitDialog(suite.ctx, viewID, "u-amy")
	suite.Require().NoError(err)

	t, err := suite.service.CurrentToast(suite.ctx, viewID)
	suite.Require().NoError(err)
	suite.Require().NotNil(t)
	suite.Equal("Audit note added to 1 invoice", t.Message)

	suite.clock.advance(5 * time.Second)
	t, err = suite.service.CurrentToast(suite.ctx, viewID)
	suite.Require().NoError(err)
	suite.Nil(t)

	suite.Require().NoError(suite.service.DismissToast(suite.ctx, viewID))
}

func (suite *ViewServiceTestSuite) TestMutationElsewherePrunesView() {
	viewID := suite.newView(ledger.DefaultParams())
	suite.toggle(viewID, selection.KindInvoice, "inv-1013")

	_, err := suite.invoices.MarkPaid(suite.ctx, []string{"inv-1013"}, "u-jake")
	suite.Require().NoError(err)

	state, err := suite.service.GetView(suite.ctx, viewID)
	suite.Require().NoError(err)
	suite.Empty(state.SelectedInvoices)
}

func (suite *ViewServiceTestSuite) TestSubmitFailureReturnsToDraft() {
	writer := new(MockInvoiceWriter)
	svc := services.NewViewService(suite.repos.OrderRepo, suite.repos.InvoiceRepo, writer)
	state, err := svc.CreateView(suite.ctx, ledger.DefaultParams())
	suite.Require().NoError(err)
	viewID := state.ViewID

	_, err = svc.Toggle(suite.ctx, viewID, selection.KindInvoice, "inv-1015")
	suite.Require().NoError(err)
	_, err = svc.OpenDialog(suite.ctx, viewID, dialog.KindDispute)
	suite.Require().NoError(err)
	reason := "Line 4 double billed"
	_, err = svc.UpdateDraft(suite.ctx, viewID, dialog.Patch{Reason: &reason})
	suite.Require().NoError(err)

	boom := errors.New("store unavailable")
	writer.On("Dispute", mock.Anything, []string{"inv-1015"}, reason, "u-amy").Return(nil, boom).Once()

	_, err = svc.SubmitDialog(suite.ctx, viewID, "u-amy")
	suite.ErrorIs(err, boom)

	snap, err := svc.GetDialog(suite.ctx, viewID)
	suite.Require().NoError(err)
	suite.Equal(dialog.StateDraft, snap.State)
	suite.Equal("store unavailable", snap.LastError)
	suite.Equal(reason, snap.Draft.(*dialog.DisputeDraft).Reason)

	toast, err := svc.CurrentToast(suite.ctx, viewID)
	suite.Require().NoError(err)
	suite.Nil(toast, "failures never toast")
	writer.AssertExpectations(suite.T())
}

func TestViewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ViewServiceTestSuite))
}
