package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoice_IsOpen(t *testing.T) {
	tests := []struct {
		name          string
		invoice       domain.Invoice
		wantOpen      bool
		wantDeposited bool
	}{
		{
			name:     "unpaid with balance",
			invoice:  domain.Invoice{Status: domain.StatusUnpaid, Balance: decimal.NewFromInt(640)},
			wantOpen: true,
		},
		{
			name:     "partial with balance",
			invoice:  domain.Invoice{Status: domain.StatusPartial, Balance: decimal.RequireFromString("0.01")},
			wantOpen: true,
		},
		{
			name:          "paid",
			invoice:       domain.Invoice{Status: domain.StatusPaid, Balance: decimal.Zero},
			wantDeposited: true,
		},
		{
			name:          "paid with a stale balance",
			invoice:       domain.Invoice{Status: domain.StatusPaid, Balance: decimal.NewFromInt(10)},
			wantDeposited: true,
		},
		{
			name:          "disputed but settled",
			invoice:       domain.Invoice{Status: domain.StatusDisputed, Balance: decimal.Zero},
			wantDeposited: true,
		},
		{
			name:    "credit balance is neither",
			invoice: domain.Invoice{Status: domain.StatusUnpaid, Balance: decimal.NewFromInt(-5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOpen, tt.invoice.IsOpen())
			assert.Equal(t, tt.wantDeposited, tt.invoice.IsDeposited())
		})
	}
}

func TestInvoice_CloneIsDeep(t *testing.T) {
	reminder := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)
	orig := domain.Invoice{
		InvoiceID:    "inv-1",
		ReminderDate: &reminder,
		LinkedEvent:  &domain.EventRef{EventID: "ev-1", NotifiedCoworkerIDs: []string{"u-tom"}},
	}

	clone := orig.Clone()
	*clone.ReminderDate = clone.ReminderDate.AddDate(0, 0, 1)
	clone.LinkedEvent.NotifiedCoworkerIDs[0] = "u-jake"

	assert.Equal(t, reminder, *orig.ReminderDate)
	assert.Equal(t, "u-tom", orig.LinkedEvent.NotifiedCoworkerIDs[0])
}

func TestParseInvoiceStatus(t *testing.T) {
	s, err := domain.ParseInvoiceStatus(" partial ")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPartial, s)

	_, err = domain.ParseInvoiceStatus("Lost")
	assert.Error(t, err)
}

func TestParseHoldingStatus(t *testing.T) {
	h, err := domain.ParseHoldingStatus("")
	require.NoError(t, err)
	assert.Equal(t, domain.HoldingNone, h)

	h, err = domain.ParseHoldingStatus("they HAVE check")
	require.NoError(t, err)
	assert.Equal(t, domain.HoldingTheyHaveCheck, h)
	assert.True(t, h.HasCheck())
	assert.True(t, h.TracksSubStatus())

	assert.False(t, domain.HoldingNeedsEndorsement.HasCheck())
	assert.False(t, domain.HoldingPAHasCheck.TracksSubStatus())

	_, err = domain.ParseHoldingStatus("In the mail")
	assert.Error(t, err)
}

func TestEnums_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Status  domain.InvoiceStatus `json:"status"`
		Holding domain.HoldingStatus `json:"holding"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"status":"paid","holding":"pa has check"}`), &payload))
	assert.Equal(t, domain.StatusPaid, payload.Status)
	assert.Equal(t, domain.HoldingPAHasCheck, payload.Holding)

	assert.Error(t, json.Unmarshal([]byte(`{"status":"Lost"}`), &payload))
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
		ok   bool
	}{
		{raw: "2026-01-12", want: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), ok: true},
		{raw: " 2026-01-12T15:04:05Z ", want: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), ok: true},
		{raw: "2026-13-01"},
		{raw: "not a date"},
		{raw: ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := domain.ParseDay(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2026, 1, 12, 23, 59, 0, 0, time.UTC)
	to := time.Date(2026, 1, 18, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 6, domain.DaysBetween(from, to))
	assert.Equal(t, -6, domain.DaysBetween(to, from))
	assert.Equal(t, "", domain.FormatDay(nil))
	assert.Equal(t, "2026-01-18", domain.FormatDay(&to))
}
