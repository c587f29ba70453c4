package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/ledger"
)

// LedgerResult is a ledger built from the current store contents.
type LedgerResult struct {
	Params ledger.Params  `json:"params"`
	Groups []ledger.Group `json:"groups"`
	Totals ledger.Totals  `json:"totals"`
}

// LedgerSvc builds the grouped ledger without a view session.
type LedgerSvc interface {
	BuildLedger(ctx context.Context, params ledger.Params) (*LedgerResult, error)
}
