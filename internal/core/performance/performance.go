// Package performance reshapes the billed/collected series into chart points
// and goal-tracking KPIs.
package performance

import (
	"fmt"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

type Granularity string

const (
	Day   Granularity = "day"
	Week  Granularity = "week"
	Month Granularity = "month"
	YTD   Granularity = "ytd"
)

var granularities = []Granularity{Day, Week, Month, YTD}

// ParseGranularity parses a granularity; empty input means Month.
func ParseGranularity(raw string) (Granularity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Month, nil
	}
	for _, g := range granularities {
		if strings.EqualFold(string(g), raw) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown granularity %q: %w", raw, apperrors.ErrValidation)
}

type Metric string

const (
	Overview       Metric = "overview"
	Billed         Metric = "billed"
	Collected      Metric = "collected"
	CollectionRate Metric = "collectionRate"
	Outstanding    Metric = "outstanding"
)

var metrics = []Metric{Overview, Billed, Collected, CollectionRate, Outstanding}

// ParseMetric parses a metric; empty input means Overview.
func ParseMetric(raw string) (Metric, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Overview, nil
	}
	for _, m := range metrics {
		if strings.EqualFold(string(m), raw) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q: %w", raw, apperrors.ErrValidation)
}

// HigherIsBetter reports the preferred direction of a metric.
func (m Metric) HigherIsBetter() bool {
	return m != Outstanding
}

type Status string

const (
	OnTrack  Status = "on-track"
	NearGoal Status = "near-goal"
	OffTrack Status = "off-track"
)

type Direction string

const (
	Favorable   Direction = "favorable"
	Unfavorable Direction = "unfavorable"
)

// OverviewPoint carries both series and both goals.
type OverviewPoint struct {
	Label         string          `json:"label"`
	Billed        decimal.Decimal `json:"billed"`
	Collected     decimal.Decimal `json:"collected"`
	BilledGoal    decimal.Decimal `json:"billedGoal"`
	CollectedGoal decimal.Decimal `json:"collectedGoal"`
}

// MetricPoint is a single metric value with its goal.
type MetricPoint struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Goal  decimal.Decimal `json:"goal"`
}

// KPI summarizes one metric over the whole series.
type KPI struct {
	Metric    Metric          `json:"metric"`
	Value     decimal.Decimal `json:"value"`
	Goal      decimal.Decimal `json:"goal"`
	Progress  decimal.Decimal `json:"progress"` // percent of goal
	Status    Status          `json:"status"`
	Direction Direction       `json:"direction"`
}

// Chart is the chart-ready output.
type Chart struct {
	Granularity Granularity     `json:"granularity"`
	Metric      Metric          `json:"metric"`
	Overview    []OverviewPoint `json:"overview,omitempty"`
	Points      []MetricPoint   `json:"points,omitempty"`
	KPIs        []KPI           `json:"kpis"`
}

var hundred = decimal.NewFromInt(100)

// Rate is collected/billed as a percentage, 0 when nothing was billed.
func Rate(billed, collected decimal.Decimal) decimal.Decimal {
	if billed.IsZero() {
		return decimal.Zero
	}
	return collected.Div(billed).Mul(hundred).Round(2)
}

// Gap is billed minus collected, floored at zero.
func Gap(billed, collected decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, billed.Sub(collected))
}

func metricValue(m Metric, billed, collected decimal.Decimal) decimal.Decimal {
	switch m {
	case Collected:
		return collected
	case CollectionRate:
		return Rate(billed, collected)
	case Outstanding:
		return Gap(billed, collected)
	default:
		return billed
	}
}

// Progress is the percentage of goal achieved. Higher-is-better metrics use
// value/goal and lower-is-better ones goal/value; a zero denominator counts as
// meeting the goal.
func Progress(value, goal decimal.Decimal, higherIsBetter bool) decimal.Decimal {
	num, den := value, goal
	if !higherIsBetter {
		num, den = goal, value
	}
	if den.IsZero() {
		return hundred
	}
	return num.Div(den).Mul(hundred).Round(1)
}

// Classify maps a progress percentage to a status.
func Classify(progress decimal.Decimal) Status {
	switch {
	case progress.GreaterThanOrEqual(hundred):
		return OnTrack
	case progress.GreaterThanOrEqual(decimal.NewFromInt(90)):
		return NearGoal
	default:
		return OffTrack
	}
}

func newKPI(m Metric, value, goal decimal.Decimal) KPI {
	p := Progress(value, goal, m.HigherIsBetter())
	dir := Unfavorable
	if p.GreaterThanOrEqual(hundred) {
		dir = Favorable
	}
	return KPI{Metric: m, Value: value, Goal: goal, Progress: p, Status: Classify(p), Direction: dir}
}

// KPIs summarizes the series into billed, collected, collection rate and outstanding.
func KPIs(series []domain.PerformancePoint) []KPI {
	billed, collected := decimal.Zero, decimal.Zero
	billedGoal, collectedGoal := decimal.Zero, decimal.Zero
	for _, p := range series {
		billed = billed.Add(p.Billed)
		collected = collected.Add(p.Collected)
		billedGoal = billedGoal.Add(p.BilledGoal)
		collectedGoal = collectedGoal.Add(p.CollectedGoal)
	}
	return []KPI{
		newKPI(Billed, billed, billedGoal),
		newKPI(Collected, collected, collectedGoal),
		newKPI(CollectionRate, Rate(billed, collected), Rate(billedGoal, collectedGoal)),
		newKPI(Outstanding, Gap(billed, collected), Gap(billedGoal, collectedGoal)),
	}
}

// Build shapes series for the chosen metric.
func Build(series []domain.PerformancePoint, g Granularity, m Metric) Chart {
	c := Chart{Granularity: g, Metric: m, KPIs: KPIs(series)}
	if m == Overview {
		c.Overview = make([]OverviewPoint, len(series))
		for i, p := range series {
			c.Overview[i] = OverviewPoint(p)
		}
		return c
	}
	c.Points = make([]MetricPoint, len(series))
	for i, p := range series {
		c.Points[i] = MetricPoint{
			Label: p.Label,
			Value: metricValue(m, p.Billed, p.Collected),
			Goal:  metricValue(m, p.BilledGoal, p.CollectedGoal),
		}
	}
	return c
}
