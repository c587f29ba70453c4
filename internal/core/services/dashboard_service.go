package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/dashboard"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
)

type dashboardService struct {
	BaseService
	orderRepo     portsrepo.OrderReader
	reminderRepo  portsrepo.ReminderReader
	dashboardRepo portsrepo.DashboardReader
	today         func() time.Time
	previewSize   int
}

// DashboardServiceOption is a functional option for configuring the dashboard service
type DashboardServiceOption func(*dashboardService)

// WithToday pins the date the delivery window is measured from. A zero time
// keeps the wall clock.
func WithToday(today time.Time) DashboardServiceOption {
	return func(s *dashboardService) {
		if today.IsZero() {
			return
		}
		d := domain.DateOnly(today)
		s.today = func() time.Time { return d }
	}
}

// WithPreviewSize sets how many rows a collapsed widget shows.
func WithPreviewSize(n int) DashboardServiceOption {
	return func(s *dashboardService) {
		if n > 0 {
			s.previewSize = n
		}
	}
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(orderRepo portsrepo.OrderReader, reminderRepo portsrepo.ReminderReader, dashboardRepo portsrepo.DashboardReader, options ...DashboardServiceOption) portssvc.DashboardSvc {
	svc := &dashboardService{
		orderRepo:     orderRepo,
		reminderRepo:  reminderRepo,
		dashboardRepo: dashboardRepo,
		today:         func() time.Time { return domain.DateOnly(time.Now()) },
		previewSize:   dashboard.DefaultPreviewSize,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) display(query portssvc.DashboardQuery, widget string) dashboard.Display {
	expanded := slices.Contains(query.Expand, widget) || slices.Contains(query.Expand, "all")
	return dashboard.Display{PreviewSize: s.previewSize, Expanded: expanded}
}

func (s *dashboardService) Summary(ctx context.Context, query portssvc.DashboardQuery) (*portssvc.DashboardSummary, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders for dashboard")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	reminders, err := s.reminderRepo.ListReminders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reminders for dashboard")
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	alerts, err := s.dashboardRepo.ListCollectionAlerts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list collection alerts")
		return nil, fmt.Errorf("failed to list collection alerts: %w", err)
	}

	today := s.today()
	summary := &portssvc.DashboardSummary{
		Today:            today,
		StorageGap:       dashboard.StorageGap(orders, s.display(query, portssvc.WidgetStorageGap)),
		UnconfirmedDOP:   dashboard.UnconfirmedDOP(orders, today, s.display(query, portssvc.WidgetUnconfirmedDOP)),
		Collections:      dashboard.CollectionsAlerts(alerts, s.display(query, portssvc.WidgetCollections)),
		Reminders:        dashboard.Reminders(reminders, query.Reminders, s.display(query, portssvc.WidgetReminders)),
		ReminderSections: dashboard.Sections(reminders),
	}

	s.LogDebug(ctx, "Dashboard built",
		slog.Int("storage_gap", summary.StorageGap.Count),
		slog.Int("unconfirmed_dop", summary.UnconfirmedDOP.Count),
		slog.Int("collections", summary.Collections.Count),
		slog.Int("reminders", summary.Reminders.Count))
	return summary, nil
}
