package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// EventReader defines read operations for calendar events
type EventReader interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)
}

// EventWriter defines write operations for calendar events
type EventWriter interface {
	// SaveEvent inserts a new event or replaces an existing one with the same id.
	SaveEvent(ctx context.Context, event domain.Event) error
}

// EventRepositoryFacade combines all event-related repository interfaces
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
