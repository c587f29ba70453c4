package domain

import (
	"strings"
	"time"
)

// DayLayout is the wire and seed format for calendar dates.
const DayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD date (a trailing time component is ignored).
// Malformed input yields the zero time and false so callers can sort it as earliest.
func ParseDay(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) >= len(DayLayout) {
		raw = raw[:len(DayLayout)]
	}
	t, err := time.Parse(DayLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DateOnly truncates t to its calendar date at midnight UTC, using t's own location for the date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDay renders a calendar date; nil renders as "".
func FormatDay(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DayLayout)
}

// DaysBetween returns the number of calendar days from `from` to `to`.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}
