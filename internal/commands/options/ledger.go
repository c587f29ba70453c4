package options

import (
	"github.com/SscSPs/backoffice_app/internal/core/ledger"
	"github.com/spf13/cobra"
)

// LedgerOptions are the ledger filter and sort flags.
type LedgerOptions struct {
	ledger.RawParams
}

func AddLedgerArgs(cmd *cobra.Command, lo *LedgerOptions) {
	cmd.Flags().StringVar(&lo.Stage, "stage", "open",
		"Ledger stage: open, deposited or a holding status.")
	cmd.Flags().StringVar(&lo.Rep, "rep", ledger.AllFilter,
		"Sales rep code to filter on.")
	cmd.Flags().StringVar(&lo.Status, "status", ledger.AllFilter,
		"Invoice status to filter on.")
	cmd.Flags().StringVarP(&lo.Search, "search", "s", "",
		"Case-insensitive search over order, bill-to and invoice fields.")
	cmd.Flags().StringVar(&lo.OrderSort, "order-sort", string(ledger.SortOpenBalance),
		"Order sort key.")
	cmd.Flags().StringVar(&lo.OrderDir, "order-dir", string(ledger.Desc),
		"Order sort direction (asc|desc).")
	cmd.Flags().StringVar(&lo.InvoiceSort, "invoice-sort", string(ledger.SortDue),
		"Invoice sort key.")
	cmd.Flags().StringVar(&lo.InvoiceDir, "invoice-dir", string(ledger.Asc),
		"Invoice sort direction (asc|desc).")
}

// Params parses the flags. Unknown values fall back to the defaults.
func (lo *LedgerOptions) Params() ledger.Params {
	return ledger.ParseParams(lo.RawParams)
}
