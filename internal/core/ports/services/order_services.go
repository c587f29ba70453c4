package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// OrderReaderSvc defines read operations for orders and the order drawer
type OrderReaderSvc interface {
	// ListOrders retrieves every order.
	ListOrders(ctx context.Context) ([]domain.Order, error)

	// GetOrderDetail retrieves an order with its current invoices, activity and documents.
	GetOrderDetail(ctx context.Context, orderID string) (*domain.OrderDetail, error)
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
}
