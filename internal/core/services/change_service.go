package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
)

type changeService struct {
	BaseService
	notifier portsrepo.ChangeNotifier
}

// NewChangeService exposes the store's change feed to transports.
func NewChangeService(notifier portsrepo.ChangeNotifier) portssvc.ChangeStreamSvc {
	return &changeService{notifier: notifier}
}

var _ portssvc.ChangeStreamSvc = (*changeService)(nil)

func (s *changeService) Subscribe(ctx context.Context) <-chan domain.ChangeEvent {
	s.LogDebug(ctx, "Change stream subscribed")
	return s.notifier.Subscribe(ctx)
}
