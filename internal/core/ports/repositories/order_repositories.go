package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// OrderReader defines read operations for order data. Orders are never written at runtime.
type OrderReader interface {
	// ListOrders returns every order in seed order.
	ListOrders(ctx context.Context) ([]domain.Order, error)

	// FindOrderByID retrieves a specific order by its unique identifier.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
}

// OrderRecordReader exposes the read-only history attached to an order.
type OrderRecordReader interface {
	ListActivities(ctx context.Context, orderID string) ([]domain.Activity, error)
	ListDocuments(ctx context.Context, orderID string) ([]domain.Document, error)
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderRecordReader
}
