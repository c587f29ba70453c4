package performance_test

import (
	"testing"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/performance"
	"github.com/SscSPs/backoffice_app/internal/seed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRateAndGap(t *testing.T) {
	assert.True(t, performance.Rate(d("200"), d("150")).Equal(d("75")))
	assert.True(t, performance.Rate(decimal.Zero, d("150")).IsZero())
	assert.True(t, performance.Gap(d("200"), d("150")).Equal(d("50")))
	assert.True(t, performance.Gap(d("100"), d("150")).IsZero())
}

func TestProgressAndClassify(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		goal   string
		higher bool
		want   string
		status performance.Status
	}{
		{name: "beat goal", value: "110", goal: "100", higher: true, want: "110", status: performance.OnTrack},
		{name: "exactly goal", value: "100", goal: "100", higher: true, want: "100", status: performance.OnTrack},
		{name: "near", value: "90", goal: "100", higher: true, want: "90", status: performance.NearGoal},
		{name: "off", value: "89", goal: "100", higher: true, want: "89", status: performance.OffTrack},
		{name: "lower is better under goal", value: "50", goal: "100", higher: false, want: "200", status: performance.OnTrack},
		{name: "lower is better over goal", value: "200", goal: "100", higher: false, want: "50", status: performance.OffTrack},
		{name: "both zero", value: "0", goal: "0", higher: true, want: "100", status: performance.OnTrack},
		{name: "both zero lower", value: "0", goal: "0", higher: false, want: "100", status: performance.OnTrack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := performance.Progress(d(tt.value), d(tt.goal), tt.higher)
			assert.True(t, p.Equal(d(tt.want)), "got %s", p)
			assert.Equal(t, tt.status, performance.Classify(p))
		})
	}
}

func TestKPIs(t *testing.T) {
	series := []domain.PerformancePoint{
		{Label: "a", Billed: d("100"), Collected: d("80"), BilledGoal: d("100"), CollectedGoal: d("90")},
		{Label: "b", Billed: d("100"), Collected: d("100"), BilledGoal: d("100"), CollectedGoal: d("90")},
	}
	kpis := performance.KPIs(series)
	require.Len(t, kpis, 4)

	byMetric := map[performance.Metric]performance.KPI{}
	for _, k := range kpis {
		byMetric[k.Metric] = k
	}

	billed := byMetric[performance.Billed]
	assert.True(t, billed.Value.Equal(d("200")))
	assert.Equal(t, performance.OnTrack, billed.Status)
	assert.Equal(t, performance.Favorable, billed.Direction)

	collected := byMetric[performance.Collected]
	assert.True(t, collected.Value.Equal(d("180")))
	assert.Equal(t, performance.OnTrack, collected.Status)

	rate := byMetric[performance.CollectionRate]
	assert.True(t, rate.Value.Equal(d("90")))
	assert.True(t, rate.Goal.Equal(d("90")))

	outstanding := byMetric[performance.Outstanding]
	assert.True(t, outstanding.Value.Equal(d("20")))
	assert.True(t, outstanding.Goal.Equal(d("20")))
	assert.Equal(t, performance.OnTrack, outstanding.Status)
}

func TestKPIs_OutstandingOverGoalIsUnfavorable(t *testing.T) {
	series := []domain.PerformancePoint{{Billed: d("100"), Collected: d("40"), BilledGoal: d("100"), CollectedGoal: d("80")}}
	for _, k := range performance.KPIs(series) {
		if k.Metric == performance.Outstanding {
			assert.True(t, k.Progress.Equal(d("33.3")))
			assert.Equal(t, performance.OffTrack, k.Status)
			assert.Equal(t, performance.Unfavorable, k.Direction)
		}
	}
}

func TestBuild_Overview(t *testing.T) {
	series := seed.Series()["week"]
	c := performance.Build(series, performance.Week, performance.Overview)

	assert.Equal(t, performance.Week, c.Granularity)
	require.Len(t, c.Overview, len(series))
	assert.Nil(t, c.Points)
	assert.Equal(t, series[0].Label, c.Overview[0].Label)
	assert.True(t, series[0].CollectedGoal.Equal(c.Overview[0].CollectedGoal))
}

func TestBuild_SingleMetric(t *testing.T) {
	series := []domain.PerformancePoint{
		{Label: "Mon", Billed: d("0"), Collected: d("10"), BilledGoal: d("50"), CollectedGoal: d("40")},
		{Label: "Tue", Billed: d("80"), Collected: d("60"), BilledGoal: d("50"), CollectedGoal: d("40")},
	}
	c := performance.Build(series, performance.Day, performance.CollectionRate)
	require.Len(t, c.Points, 2)
	assert.Nil(t, c.Overview)
	assert.True(t, c.Points[0].Value.IsZero(), "no billing means a zero rate")
	assert.True(t, c.Points[1].Value.Equal(d("75")))
	assert.True(t, c.Points[1].Goal.Equal(d("80")))

	out := performance.Build(series, performance.Day, performance.Outstanding)
	assert.True(t, out.Points[0].Value.IsZero())
	assert.True(t, out.Points[1].Value.Equal(d("20")))
}

func TestParse(t *testing.T) {
	g, err := performance.ParseGranularity("")
	require.NoError(t, err)
	assert.Equal(t, performance.Month, g)
	g, err = performance.ParseGranularity("YTD")
	require.NoError(t, err)
	assert.Equal(t, performance.YTD, g)
	_, err = performance.ParseGranularity("hour")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	m, err := performance.ParseMetric("collectionrate")
	require.NoError(t, err)
	assert.Equal(t, performance.CollectionRate, m)
	_, err = performance.ParseMetric("profit")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
