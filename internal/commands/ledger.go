package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/SscSPs/backoffice_app/internal/adapters/memory"
	"github.com/SscSPs/backoffice_app/internal/commands/options"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/SscSPs/backoffice_app/internal/utils"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func addLedger(topLevel *cobra.Command) {
	lo := &options.LedgerOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Print the collections ledger.",
		Long:  "Print the collections ledger of the seeded data set, grouped by order.",
		Example: `
backoffice ledger
backoffice ledger --stage deposited
backoffice ledger --rep JK --status Partial --order-sort orderName --order-dir asc
backoffice ledger -s rivera --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			cfg, err := config.LoadConfig()
			if err != nil {
				return oo.HandleError(w, err)
			}
			container := services.NewServiceContainer(cfg, memory.NewRepositoryProvider(memory.NewStore()), nil)

			result, err := container.Ledger.BuildLedger(cmd.Context(), lo.Params())
			if err != nil {
				return oo.HandleError(w, err)
			}

			if oo.JSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			printLedger(w, result)
			return nil
		},
	}

	options.AddLedgerArgs(cmd, lo)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func printLedger(w io.Writer, result *portssvc.LedgerResult) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(
		bold.Sprint("ORDER"),
		bold.Sprint("BILL TO"),
		bold.Sprint("REP"),
		bold.Sprint("INVOICE"),
		bold.Sprint("DUE"),
		bold.Sprint("STATUS"),
		bold.Sprint("HOLDING"),
		bold.Sprint("BALANCE"),
	)
	for _, g := range result.Groups {
		tbl.AddRow(
			bold.Sprintf("%s %s", g.Order.OrderNumber, g.Order.Name),
			g.Order.BillToCompany,
			g.Order.Rep,
			"",
			"",
			g.PrimaryStatus,
			"",
			bold.Sprint(utils.FormatMoney(g.OpenBalance)),
		)
		for _, inv := range g.Invoices {
			tbl.AddRow("", "", "", inv.InvoiceNumber, inv.DueDate, inv.Status, inv.HoldingStatus, utils.FormatMoney(inv.Balance))
		}
	}
	tbl.RightAlign(7)

	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintf(w, "\n%d orders, %d invoices, %s open\n",
		result.Totals.Orders, result.Totals.Invoices, utils.FormatMoney(result.Totals.OpenBalance))
}
