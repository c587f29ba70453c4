package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// ListInvoices returns every invoice in insertion order.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// FindInvoiceByID retrieves a specific invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoicesByIDs retrieves multiple invoices, preserving the order of ids.
	// Any unknown id fails the whole lookup with apperrors.ErrNotFound.
	FindInvoicesByIDs(ctx context.Context, invoiceIDs []string) ([]domain.Invoice, error)

	// ListInvoicesByOrder returns the invoices belonging to one order.
	ListInvoicesByOrder(ctx context.Context, orderID string) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// ReplaceInvoices swaps stored invoices by id. Either every invoice is
	// replaced or none is; invoices are never inserted or deleted.
	ReplaceInvoices(ctx context.Context, invoices []domain.Invoice) error

	// UpdateInvoices applies fn to each stored invoice atomically and returns
	// the results in id order. Any unknown id fails with apperrors.ErrNotFound
	// and changes nothing.
	UpdateInvoices(ctx context.Context, invoiceIDs []string, fn func(domain.Invoice) domain.Invoice) ([]domain.Invoice, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
