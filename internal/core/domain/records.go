package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coworker is an entry in the static user lookup table.
type Coworker struct {
	CoworkerID  string `json:"coworkerID"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	BadgeClass  string `json:"badgeClass"`
}

// Activity is a read-only historical record scoped to an order.
type Activity struct {
	ActivityID string    `json:"activityID"`
	OrderID    string    `json:"orderID"`
	At         time.Time `json:"at"`
	Actor      string    `json:"actor"`
	Kind       string    `json:"kind"`
	Summary    string    `json:"summary"`
}

// Document is a read-only file reference scoped to an order.
type Document struct {
	DocumentID string    `json:"documentID"`
	OrderID    string    `json:"orderID"`
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// CollectionAlert flags an order for the collections widget.
type CollectionAlert struct {
	OrderID   string          `json:"orderID"`
	OrderName string          `json:"orderName"`
	Reasons   []AlertReason   `json:"reasons"`
	Balance   decimal.Decimal `json:"balance"`
	Rep       string          `json:"rep"`
}

// PerformancePoint is one bucket of a billed/collected time series.
type PerformancePoint struct {
	Label         string          `json:"label"`
	Billed        decimal.Decimal `json:"billed"`
	Collected     decimal.Decimal `json:"collected"`
	BilledGoal    decimal.Decimal `json:"billedGoal"`
	CollectedGoal decimal.Decimal `json:"collectedGoal"`
}

// ChangeKind names the entity class touched by a store mutation.
type ChangeKind string

const (
	ChangeInvoices  ChangeKind = "invoices"
	ChangeEvents    ChangeKind = "events"
	ChangeReminders ChangeKind = "reminders"
)

// ChangeEvent is published by the state container after every mutation.
type ChangeEvent struct {
	Kind ChangeKind `json:"kind"`
	IDs  []string   `json:"ids"`
	At   time.Time  `json:"at"`
}

// OrderDetail is everything the order drawer shows for one order.
type OrderDetail struct {
	Order       Order           `json:"order"`
	Invoices    []Invoice       `json:"invoices"`
	Activities  []Activity      `json:"activities"`
	Documents   []Document      `json:"documents"`
	OpenBalance decimal.Decimal `json:"openBalance"`
}
