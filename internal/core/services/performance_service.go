package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/performance"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
)

type performanceService struct {
	BaseService
	dashboardRepo portsrepo.DashboardReader
}

// NewPerformanceService creates the chart data service.
func NewPerformanceService(dashboardRepo portsrepo.DashboardReader) portssvc.PerformanceSvc {
	return &performanceService{dashboardRepo: dashboardRepo}
}

var _ portssvc.PerformanceSvc = (*performanceService)(nil)

func (s *performanceService) Chart(ctx context.Context, granularity performance.Granularity, metric performance.Metric) (*performance.Chart, error) {
	series, err := s.dashboardRepo.Series(ctx, string(granularity))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no series for granularity %q", apperrors.ErrValidation, granularity)
		}
		s.LogError(ctx, err, "Failed to load series", slog.String("granularity", string(granularity)))
		return nil, fmt.Errorf("failed to load series: %w", err)
	}
	chart := performance.Build(series, granularity, metric)
	s.LogDebug(ctx, "Chart built",
		slog.String("granularity", string(granularity)),
		slog.String("metric", string(metric)),
		slog.Int("points", len(series)))
	return &chart, nil
}
