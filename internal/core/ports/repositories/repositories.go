package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	OrderRepo     OrderRepositoryFacade
	InvoiceRepo   InvoiceRepositoryFacade
	EventRepo     EventRepositoryFacade
	ReminderRepo  ReminderRepositoryFacade
	CoworkerRepo  CoworkerReader
	DashboardRepo DashboardReader
	Changes       ChangeNotifier
}
