package dto

import (
	"strings"

	"github.com/SscSPs/backoffice_app/internal/core/performance"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
)

// DashboardQuery selects widgets to expand and filters the reminders card.
// Expand accepts repeated values and comma separated lists.
type DashboardQuery struct {
	Expand []string `form:"expand"`
	ReminderQuery
}

// ToQuery builds the service query for the acting user.
func (q DashboardQuery) ToQuery(actor string) portssvc.DashboardQuery {
	expand := []string{}
	for _, raw := range q.Expand {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				expand = append(expand, part)
			}
		}
	}
	return portssvc.DashboardQuery{Expand: expand, Reminders: q.ReminderQuery.ToFilter(actor)}
}

// PerformanceQuery picks the series and metric of the chart.
type PerformanceQuery struct {
	Granularity string `form:"granularity"`
	Metric      string `form:"metric"`
}

// Parse validates the query. Empty values mean month and overview.
func (q PerformanceQuery) Parse() (performance.Granularity, performance.Metric, error) {
	g, err := performance.ParseGranularity(q.Granularity)
	if err != nil {
		return "", "", err
	}
	m, err := performance.ParseMetric(q.Metric)
	if err != nil {
		return "", "", err
	}
	return g, m, nil
}
