package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/backoffice_app/internal/core/ledger"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
)

// ledgerService builds one-off ledgers for callers that keep no view, such as
// the CLI and the stateless ledger endpoint.
type ledgerService struct {
	BaseService
	orderRepo   portsrepo.OrderReader
	invoiceRepo portsrepo.InvoiceReader
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(orderRepo portsrepo.OrderReader, invoiceRepo portsrepo.InvoiceReader) portssvc.LedgerSvc {
	return &ledgerService{
		orderRepo:   orderRepo,
		invoiceRepo: invoiceRepo,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) BuildLedger(ctx context.Context, params ledger.Params) (*portssvc.LedgerResult, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders for ledger")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices for ledger")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	groups := ledger.Build(orders, invoices, params)
	totals := ledger.Summarize(groups)
	s.LogDebug(ctx, "Ledger built",
		slog.String("stage", string(params.Stage)),
		slog.Int("orders", totals.Orders),
		slog.Int("invoices", totals.Invoices))
	return &portssvc.LedgerResult{Params: params, Groups: groups, Totals: totals}, nil
}
