package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
)

type lookupService struct {
	BaseService
	eventRepo    portsrepo.EventReader
	coworkerRepo portsrepo.CoworkerReader
}

// NewLookupService creates the service behind the dialog pick lists.
func NewLookupService(eventRepo portsrepo.EventReader, coworkerRepo portsrepo.CoworkerReader) portssvc.LookupSvc {
	return &lookupService{eventRepo: eventRepo, coworkerRepo: coworkerRepo}
}

var _ portssvc.LookupSvc = (*lookupService)(nil)

// ListEvents returns calendar events, soonest first.
func (s *lookupService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list events")
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })
	return nonNil(events), nil
}

func (s *lookupService) ListCoworkers(ctx context.Context) ([]domain.Coworker, error) {
	coworkers, err := s.coworkerRepo.ListCoworkers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list coworkers")
		return nil, fmt.Errorf("failed to list coworkers: %w", err)
	}
	return nonNil(coworkers), nil
}
