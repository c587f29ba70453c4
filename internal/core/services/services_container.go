package services

import (
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// analytics may be nil.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, analytics portssvc.Analytics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Invoice = NewInvoiceService(
		repos.InvoiceRepo,
		repos.EventRepo,
		WithCoworkerRepository(repos.CoworkerRepo),
		WithInvoiceAnalytics(analytics),
	)

	// Views submit their dialogs through the invoice service.
	container.View = NewViewService(
		repos.OrderRepo,
		repos.InvoiceRepo,
		container.Invoice,
		WithToastTTL(cfg.ToastTTL),
		WithViewIdleTTL(cfg.ViewIdleTTL),
	)

	container.Ledger = NewLedgerService(repos.OrderRepo, repos.InvoiceRepo)
	container.Order = NewOrderService(repos.OrderRepo, repos.InvoiceRepo)
	container.Lookup = NewLookupService(repos.EventRepo, repos.CoworkerRepo)
	container.Reminder = NewReminderService(repos.ReminderRepo, repos.CoworkerRepo, WithReminderAnalytics(analytics))
	container.Dashboard = NewDashboardService(
		repos.OrderRepo,
		repos.ReminderRepo,
		repos.DashboardRepo,
		WithToday(cfg.DashboardToday),
		WithPreviewSize(cfg.PreviewSize),
	)
	container.Performance = NewPerformanceService(repos.DashboardRepo)
	container.Changes = NewChangeService(repos.Changes)

	return container
}
