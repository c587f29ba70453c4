package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/performance"
)

// PerformanceSvc serves chart data.
type PerformanceSvc interface {
	Chart(ctx context.Context, granularity performance.Granularity, metric performance.Metric) (*performance.Chart, error)
}
