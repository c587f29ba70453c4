package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type orderService struct {
	BaseService
	orderRepo   portsrepo.OrderRepositoryFacade
	invoiceRepo portsrepo.InvoiceReader
}

// NewOrderService creates the order drawer service. Invoices are read from the
// same store the ledger mutates, so the drawer always reflects ledger edits.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, invoiceRepo portsrepo.InvoiceReader) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: orderRepo, invoiceRepo: invoiceRepo}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

func (s *orderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		return []domain.Order{}, nil
	}
	s.LogDebug(ctx, "Orders listed", slog.Int("count", len(orders)))
	return orders, nil
}

func (s *orderService) GetOrderDetail(ctx context.Context, orderID string) (*domain.OrderDetail, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find order", slog.String("order_id", orderID))
		}
		return nil, err
	}

	invoices, err := s.invoiceRepo.ListInvoicesByOrder(ctx, orderID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list order invoices", slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to list invoices of order %s: %w", orderID, err)
	}
	activities, err := s.orderRepo.ListActivities(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities of order %s: %w", orderID, err)
	}
	documents, err := s.orderRepo.ListDocuments(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents of order %s: %w", orderID, err)
	}

	open := decimal.Zero
	for _, inv := range invoices {
		if inv.IsOpen() {
			open = open.Add(inv.Balance)
		}
	}

	return &domain.OrderDetail{
		Order:       *order,
		Invoices:    nonNil(invoices),
		Activities:  nonNil(activities),
		Documents:   nonNil(documents),
		OpenBalance: open,
	}, nil
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
