// Package dashboard computes the read-only dashboard widgets. Each widget is
// a count, a short preview and, when expanded, the full list.
package dashboard

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// DefaultPreviewSize is how many rows a collapsed widget shows.
const DefaultPreviewSize = 2

// DOPWindowDays bounds how far ahead an unconfirmed delivery is flagged.
const DOPWindowDays = 10

// Widget is the common shape of every dashboard card.
type Widget[T any] struct {
	Count   int `json:"count"`
	Preview []T `json:"preview"`
	Items   []T `json:"items,omitempty"`
}

// Display controls how much of a widget is returned.
type Display struct {
	PreviewSize int
	Expanded    bool
}

func newWidget[T any](rows []T, d Display) Widget[T] {
	size := d.PreviewSize
	if size <= 0 {
		size = DefaultPreviewSize
	}
	w := Widget[T]{Count: len(rows), Preview: rows[:min(size, len(rows))]}
	if d.Expanded {
		w.Items = rows
	}
	return w
}

// StorageGapRow is an order whose storage ends before its final delivery.
type StorageGapRow struct {
	OrderID          string    `json:"orderID"`
	OrderName        string    `json:"orderName"`
	Rep              string    `json:"rep"`
	StorageExpiresAt time.Time `json:"storageExpiresAt"`
	EstFinalDelivery time.Time `json:"estFinalDelivery"`
	GapDays          int       `json:"gapDays"`
}

// StorageGap lists orders with storage expiring before the estimated final
// delivery, soonest expiry first. Orders missing either date are ignored.
func StorageGap(orders []domain.Order, d Display) Widget[StorageGapRow] {
	rows := []StorageGapRow{}
	for _, o := range orders {
		if o.StorageExpiresAt == nil || o.EstFinalDelivery == nil {
			continue
		}
		if !o.StorageExpiresAt.Before(*o.EstFinalDelivery) {
			continue
		}
		rows = append(rows, StorageGapRow{
			OrderID:          o.OrderID,
			OrderName:        o.Name,
			Rep:              o.Rep,
			StorageExpiresAt: *o.StorageExpiresAt,
			EstFinalDelivery: *o.EstFinalDelivery,
			GapDays:          domain.DaysBetween(*o.StorageExpiresAt, *o.EstFinalDelivery),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].StorageExpiresAt.Before(rows[j].StorageExpiresAt)
	})
	return newWidget(rows, d)
}

// DOPRow is an order whose delivery date is not yet confirmed.
type DOPRow struct {
	OrderID     string    `json:"orderID"`
	OrderName   string    `json:"orderName"`
	Rep         string    `json:"rep"`
	DeliveryDue time.Time `json:"deliveryDue"`
	DaysUntil   int       `json:"daysUntil"`
}

// UnconfirmedDOP lists questioned deliveries due within the next
// DOPWindowDays days (today included), nearest first.
func UnconfirmedDOP(orders []domain.Order, today time.Time, d Display) Widget[DOPRow] {
	rows := []DOPRow{}
	for _, o := range orders {
		if o.DOPStatus != domain.DOPQuestion || o.DeliveryDue == nil {
			continue
		}
		days := domain.DaysBetween(today, *o.DeliveryDue)
		if days < 0 || days > DOPWindowDays {
			continue
		}
		rows = append(rows, DOPRow{
			OrderID:     o.OrderID,
			OrderName:   o.Name,
			Rep:         o.Rep,
			DeliveryDue: *o.DeliveryDue,
			DaysUntil:   days,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].DaysUntil < rows[j].DaysUntil })
	return newWidget(rows, d)
}

// CollectionsAlerts passes the flagged list through in its given order.
func CollectionsAlerts(alerts []domain.CollectionAlert, d Display) Widget[domain.CollectionAlert] {
	rows := append([]domain.CollectionAlert{}, alerts...)
	return newWidget(rows, d)
}

// Scope selects whose reminders are shown.
type Scope string

const (
	ScopeMine Scope = "mine"
	ScopeAll  Scope = "all"
)

// ParseScope defaults to ScopeMine.
func ParseScope(raw string) Scope {
	if strings.EqualFold(strings.TrimSpace(raw), string(ScopeAll)) {
		return ScopeAll
	}
	return ScopeMine
}

// ReminderFilter narrows the reminders widget.
type ReminderFilter struct {
	Scope    Scope
	Actor    string
	ShowDone bool
	Section  string
}

// FilterReminders applies f and sorts newest first.
func FilterReminders(reminders []domain.Reminder, f ReminderFilter) []domain.Reminder {
	rows := []domain.Reminder{}
	for _, r := range reminders {
		if f.Scope != ScopeAll && r.AssigneeID != f.Actor {
			continue
		}
		if r.Done && !f.ShowDone {
			continue
		}
		if s := strings.TrimSpace(f.Section); s != "" && !strings.EqualFold(s, "all") && !strings.EqualFold(r.Section, s) {
			continue
		}
		rows = append(rows, r.Clone())
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return rows
}

// Reminders is the reminders widget.
func Reminders(reminders []domain.Reminder, f ReminderFilter, d Display) Widget[domain.Reminder] {
	return newWidget(FilterReminders(reminders, f), d)
}

// Sections lists the distinct reminder sections, sorted.
func Sections(reminders []domain.Reminder) []string {
	out := []string{}
	for _, r := range reminders {
		if r.Section != "" && !slices.Contains(out, r.Section) {
			out = append(out, r.Section)
		}
	}
	slices.Sort(out)
	return out
}
