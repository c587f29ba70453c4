package services_test

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/rules"
	"github.com/stretchr/testify/mock"
)

// MockAnalytics records analytics events.
type MockAnalytics struct {
	mock.Mock
}

var _ portssvc.Analytics = (*MockAnalytics)(nil)

func (m *MockAnalytics) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

// MockInvoiceWriter is a mock type for the InvoiceWriterSvc interface
type MockInvoiceWriter struct {
	mock.Mock
}

var _ portssvc.InvoiceWriterSvc = (*MockInvoiceWriter)(nil)

func (m *MockInvoiceWriter) invoices(args mock.Arguments) ([]domain.Invoice, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceWriter) UpdateStatus(ctx context.Context, invoiceIDs []string, payload rules.StatusPayload, actor string) ([]domain.Invoice, error) {
	return m.invoices(m.Called(ctx, invoiceIDs, payload, actor))
}

func (m *MockInvoiceWriter) LinkEvent(ctx context.Context, invoiceIDs []string, cmd portssvc.LinkEventCommand, actor string) ([]domain.Invoice, error) {
	return m.invoices(m.Called(ctx, invoiceIDs, cmd, actor))
}

func (m *MockInvoiceWriter) UnlinkEvent(ctx context.Context, invoiceID string, actor string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceWriter) MarkPaid(ctx context.Context, invoiceIDs []string, actor string) ([]domain.Invoice, error) {
	return m.invoices(m.Called(ctx, invoiceIDs, actor))
}

func (m *MockInvoiceWriter) Dispute(ctx context.Context, invoiceIDs []string, reason string, actor string) ([]domain.Invoice, error) {
	return m.invoices(m.Called(ctx, invoiceIDs, reason, actor))
}

func (m *MockInvoiceWriter) Audit(ctx context.Context, invoiceIDs []string, note string, actor string) ([]domain.Invoice, error) {
	return m.invoices(m.Called(ctx, invoiceIDs, note, actor))
}
