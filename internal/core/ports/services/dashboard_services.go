package services

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/dashboard"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// Widget names used to expand a dashboard card.
const (
	WidgetStorageGap     = "storage-gap"
	WidgetUnconfirmedDOP = "unconfirmed-dop"
	WidgetCollections    = "collections"
	WidgetReminders      = "reminders"
)

// DashboardQuery selects what the dashboard returns.
type DashboardQuery struct {
	Expand    []string
	Reminders dashboard.ReminderFilter
}

// DashboardSummary is the full dashboard.
type DashboardSummary struct {
	Today            time.Time                                 `json:"today"`
	StorageGap       dashboard.Widget[dashboard.StorageGapRow] `json:"storageGap"`
	UnconfirmedDOP   dashboard.Widget[dashboard.DOPRow]        `json:"unconfirmedDOP"`
	Collections      dashboard.Widget[domain.CollectionAlert]  `json:"collections"`
	Reminders        dashboard.Widget[domain.Reminder]         `json:"reminders"`
	ReminderSections []string                                  `json:"reminderSections"`
}

// DashboardSvc builds the dashboard widgets.
type DashboardSvc interface {
	Summary(ctx context.Context, query DashboardQuery) (*DashboardSummary, error)
}
