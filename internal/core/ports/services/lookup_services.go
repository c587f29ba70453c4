package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// LookupSvc serves the static pick lists used by dialogs.
type LookupSvc interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	ListCoworkers(ctx context.Context) ([]domain.Coworker, error)
}
