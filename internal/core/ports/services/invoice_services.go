package services

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/rules"
)

// LinkEventCommand describes the event invoices get linked to. In existing
// mode only EventID, TaskType and NotifiedCoworkerIDs are read; the rest is
// copied from the stored event.
type LinkEventCommand struct {
	Mode                domain.EventMode
	EventID             string
	Title               string
	Start               time.Time
	EventType           domain.EventType
	TaskType            domain.TaskType
	NotifiedCoworkerIDs []string
}

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}

// InvoiceWriterSvc defines the bulk mutations of invoices. Every method
// rejects an empty id list with apperrors.ErrValidation and returns the
// updated invoices in the order of ids.
type InvoiceWriterSvc interface {
	UpdateStatus(ctx context.Context, invoiceIDs []string, payload rules.StatusPayload, actor string) ([]domain.Invoice, error)
	LinkEvent(ctx context.Context, invoiceIDs []string, cmd LinkEventCommand, actor string) ([]domain.Invoice, error)
	UnlinkEvent(ctx context.Context, invoiceID string, actor string) (*domain.Invoice, error)
	MarkPaid(ctx context.Context, invoiceIDs []string, actor string) ([]domain.Invoice, error)
	Dispute(ctx context.Context, invoiceIDs []string, reason string, actor string) ([]domain.Invoice, error)
	Audit(ctx context.Context, invoiceIDs []string, note string, actor string) ([]domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
