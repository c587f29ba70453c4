package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// CoworkerReader reads the static user lookup table.
type CoworkerReader interface {
	ListCoworkers(ctx context.Context) ([]domain.Coworker, error)
	FindCoworkerByID(ctx context.Context, coworkerID string) (*domain.Coworker, error)
}

// DashboardReader reads the static inputs of the dashboard widgets and charts.
type DashboardReader interface {
	ListCollectionAlerts(ctx context.Context) ([]domain.CollectionAlert, error)

	// Series returns the performance series for a granularity name (day, week, month, ytd).
	Series(ctx context.Context, granularity string) ([]domain.PerformancePoint, error)
}

// ChangeNotifier streams store mutations to interested parties.
type ChangeNotifier interface {
	// Subscribe returns a channel of change events that is closed once ctx is done.
	Subscribe(ctx context.Context) <-chan domain.ChangeEvent
}
