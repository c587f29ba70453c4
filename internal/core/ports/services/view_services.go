package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/dialog"
	"github.com/SscSPs/backoffice_app/internal/core/ledger"
	"github.com/SscSPs/backoffice_app/internal/core/selection"
	"github.com/SscSPs/backoffice_app/internal/core/toast"
)

// ViewState is a snapshot of one ledger session.
type ViewState struct {
	ViewID           string          `json:"viewID"`
	Params           ledger.Params   `json:"params"`
	SelectedOrders   []string        `json:"selectedOrders"`
	SelectedInvoices []string        `json:"selectedInvoices"`
	Dialog           dialog.Snapshot `json:"dialog"`
	Toast            *toast.Toast    `json:"toast,omitempty"`
}

// LedgerView is the built ledger of a session plus what is selected in it.
type LedgerView struct {
	ViewID    string         `json:"viewID"`
	Params    ledger.Params  `json:"params"`
	Groups    []ledger.Group `json:"groups"`
	Totals    ledger.Totals  `json:"totals"`
	Effective []string       `json:"effectiveSelection"`
	State     ViewState      `json:"state"`
}

// ViewSessionSvc creates and reads ledger sessions.
type ViewSessionSvc interface {
	CreateView(ctx context.Context, params ledger.Params) (*ViewState, error)
	GetView(ctx context.Context, viewID string) (*ViewState, error)
	SetParams(ctx context.Context, viewID string, params ledger.Params) (*ViewState, error)
	Ledger(ctx context.Context, viewID string) (*LedgerView, error)
}

// ViewSelectionSvc edits a session's selection.
type ViewSelectionSvc interface {
	Toggle(ctx context.Context, viewID string, kind selection.Kind, id string) (*ViewState, error)
	ToggleAll(ctx context.Context, viewID string, kind selection.Kind) (*ViewState, error)
	ClearSelection(ctx context.Context, viewID string) (*ViewState, error)
	EffectiveSelection(ctx context.Context, viewID string) ([]string, error)
}

// ViewDialogSvc drives a session's dialog machine and toast.
type ViewDialogSvc interface {
	OpenDialog(ctx context.Context, viewID string, kind dialog.Kind) (*dialog.Snapshot, error)
	UpdateDraft(ctx context.Context, viewID string, patch dialog.Patch) (*dialog.Snapshot, error)
	SubmitDialog(ctx context.Context, viewID string, actor string) (*ViewState, error)
	CancelDialog(ctx context.Context, viewID string) (*dialog.Snapshot, error)
	GetDialog(ctx context.Context, viewID string) (*dialog.Snapshot, error)
	CurrentToast(ctx context.Context, viewID string) (*toast.Toast, error)
	DismissToast(ctx context.Context, viewID string) error
}

// ViewSvcFacade combines all view-related service interfaces
type ViewSvcFacade interface {
	ViewSessionSvc
	ViewSelectionSvc
	ViewDialogSvc
}
