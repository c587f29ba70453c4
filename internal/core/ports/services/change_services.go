package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// ChangeStreamSvc streams business-state changes to live clients.
type ChangeStreamSvc interface {
	Subscribe(ctx context.Context) <-chan domain.ChangeEvent
}
