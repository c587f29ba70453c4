package dto

import (
	"github.com/SscSPs/backoffice_app/internal/core/dialog"
)

// CreateViewRequest opens a ledger session. Omitted params mean the default ledger.
type CreateViewRequest struct {
	Params *LedgerQuery `json:"params"`
}

// ToggleRequest checks or unchecks one order or invoice row.
type ToggleRequest struct {
	Kind string `json:"kind" binding:"required,oneof=order invoice orders invoices"`
	ID   string `json:"id" binding:"required"`
}

// ToggleAllRequest checks or unchecks every visible row of a kind.
type ToggleAllRequest struct {
	Kind string `json:"kind" binding:"required,oneof=order invoice orders invoices"`
}

// EffectiveSelectionResponse is the invoice set bulk actions would target.
type EffectiveSelectionResponse struct {
	InvoiceIDs []string `json:"invoiceIDs"`
	Count      int      `json:"count"`
}

// ToEffectiveSelectionResponse wraps the effective ids.
func ToEffectiveSelectionResponse(ids []string) EffectiveSelectionResponse {
	if ids == nil {
		ids = []string{}
	}
	return EffectiveSelectionResponse{InvoiceIDs: ids, Count: len(ids)}
}

// OpenDialogRequest opens a dialog of the given kind for the current selection.
type OpenDialogRequest struct {
	Kind string `json:"kind" binding:"required"`
}

// DialogPatchRequest edits the open dialog's draft.
type DialogPatchRequest struct {
	dialog.Patch
}
