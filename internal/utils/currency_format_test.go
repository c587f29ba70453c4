package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
	assert.Equal(t, "640.00", FormatWithPrecision(decimal.NewFromInt(640), 2))
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"640", "$640.00"},
		{"3827.55", "$3,827.55"},
		{"4467.5", "$4,467.50"},
		{"251000", "$251,000.00"},
		{"1234567.891", "$1,234,567.89"},
		{"-1200", "-$1,200.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.in)))
		})
	}
}
