// Package seed holds the static dataset the back office starts from.
// Every function returns freshly allocated values so callers can never
// alter the seed itself.
package seed

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Today is the calendar anchor the seed data was authored against.
const Today = "2026-01-12"

func day(s string) *time.Time {
	t, ok := domain.ParseDay(s)
	if !ok {
		panic("seed: bad date " + s)
	}
	return &t
}

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		panic("seed: bad timestamp " + s)
	}
	return t
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Coworkers returns the static user lookup table.
func Coworkers() []domain.Coworker {
	return []domain.Coworker{
		{CoworkerID: "u-amy", DisplayName: "Amy Brooks", Role: "Collections", BadgeClass: "badge-blue"},
		{CoworkerID: "u-jake", DisplayName: "Jake Kim", Role: "Sales", BadgeClass: "badge-green"},
		{CoworkerID: "u-maria", DisplayName: "Maria Ruiz", Role: "Sales", BadgeClass: "badge-purple"},
		{CoworkerID: "u-tom", DisplayName: "Tom Hale", Role: "Operations", BadgeClass: "badge-orange"},
	}
}

// Orders returns the seeded orders.
func Orders() []domain.Order {
	return []domain.Order{
		{
			OrderID: "o-1250037", OrderNumber: "1250037", Name: "Cotton – Hackettstown, NJ",
			BillToCompany: "Liberty Mutual", BillToPerson: "Dana Cotton",
			Email: "dana.cotton@example.com", Phone: "908-555-0137", Rep: "AB",
			NextFollowUp: day("2026-01-15"), ClaimNumber: "LM-448812", PolicyNumber: "H3-99120",
			ServiceAddress: "14 Grand Ave, Hackettstown, NJ",
			StorageExpiresAt: day("2026-01-31"), EstFinalDelivery: day("2026-02-10"),
			DOPStatus: domain.DOPQuestion, DeliveryDue: day("2026-01-18"),
		},
		{
			OrderID: "o-1250041", OrderNumber: "1250041", Name: "Patel – Morristown, NJ",
			BillToCompany: "State Farm", BillToPerson: "Ravi Patel",
			Email: "ravi.patel@example.com", Phone: "973-555-0141", Rep: "JK",
			NextFollowUp: day("2026-01-13"), ClaimNumber: "SF-100293", PolicyNumber: "SF-7781",
			ServiceAddress: "220 South St, Morristown, NJ",
			StorageExpiresAt: day("2026-03-01"), EstFinalDelivery: day("2026-02-20"),
			DOPStatus: domain.DOPConfirmed, DeliveryDue: day("2026-01-20"),
		},
		{
			OrderID: "o-1250052", OrderNumber: "1250052", Name: "Nguyen – Dover, NJ",
			BillToCompany: "", BillToPerson: "Linh Nguyen",
			Email: "linh.nguyen@example.com", Phone: "973-555-0152", Rep: "MR",
			ClaimNumber: "", PolicyNumber: "",
			ServiceAddress: "8 Blackwell St, Dover, NJ",
			StorageExpiresAt: day("2026-01-20"), EstFinalDelivery: day("2026-01-28"),
			DOPStatus: domain.DOPQuestion, DeliveryDue: day("2026-01-21"),
		},
		{
			OrderID: "o-1250060", OrderNumber: "1250060", Name: "Okafor – Chester, NJ",
			BillToCompany: "Allstate", BillToPerson: "Chidi Okafor",
			Email: "chidi.okafor@example.com", Phone: "908-555-0160", Rep: "AB",
			NextFollowUp: day("2026-01-22"), ClaimNumber: "AS-55120", PolicyNumber: "AS-3310",
			ServiceAddress: "3 Main St, Chester, NJ",
			DOPStatus: domain.DOPQuestion, DeliveryDue: day("2026-01-30"),
		},
		{
			OrderID: "o-1250066", OrderNumber: "1250066", Name: "Schmidt – Flanders, NJ",
			BillToCompany: "Travelers", BillToPerson: "Greta Schmidt",
			Email: "greta.schmidt@example.com", Phone: "973-555-0166", Rep: "JK",
			NextFollowUp: day("2026-01-19"), ClaimNumber: "TR-77310", PolicyNumber: "TR-1201",
			ServiceAddress: "51 Drakesdale Rd, Flanders, NJ",
			StorageExpiresAt: day("2026-02-05"), EstFinalDelivery: day("2026-02-04"),
			DOPStatus: domain.DOPConfirmed,
		},
		{
			OrderID: "o-1250071", OrderNumber: "1250071", Name: "Rivera – Budd Lake, NJ",
			BillToCompany: "Liberty Mutual", BillToPerson: "Ana Rivera",
			Email: "ana.rivera@example.com", Phone: "973-555-0171", Rep: "MR",
			ClaimNumber: "LM-449001", PolicyNumber: "H3-10442",
			ServiceAddress: "90 Sand Shore Rd, Budd Lake, NJ",
			StorageExpiresAt: day("2026-01-25"), EstFinalDelivery: day("2026-03-02"),
			DOPStatus: domain.DOPQuestion, DeliveryDue: day("2026-01-10"),
		},
		{
			OrderID: "o-1250078", OrderNumber: "1250078", Name: "Whitfield – Mendham, NJ",
			BillToCompany: "Chubb", BillToPerson: "Harold Whitfield",
			Email: "h.whitfield@example.com", Phone: "973-555-0178", Rep: "AB",
			NextFollowUp: day("2026-01-27"), ClaimNumber: "CB-20931", PolicyNumber: "CB-5512",
			ServiceAddress: "12 Hilltop Rd, Mendham, NJ",
			DOPStatus: domain.DOPConfirmed,
		},
	}
}

// Invoices returns the seeded invoices.
func Invoices() []domain.Invoice {
	return []domain.Invoice{
		{InvoiceID: "inv-1001", OrderID: "o-1250037", InvoiceNumber: "INV-1001", Type: "Deposit", BilledDate: "2025-11-02", DueDate: "2025-12-02", Amount: money("5000.00"), Balance: money("0"), Status: domain.StatusPaid, HoldingStatus: domain.HoldingNone},
		{InvoiceID: "inv-1009", OrderID: "o-1250037", InvoiceNumber: "INV-1009", Type: "Contents", BilledDate: "2025-12-10", DueDate: "2026-01-09", Amount: money("3827.55"), Balance: money("3827.55"), Status: domain.StatusUnpaid, HoldingStatus: domain.HoldingNeedsEndorsement, ReminderDate: day("2026-01-14")},
		{InvoiceID: "inv-1010", OrderID: "o-1250037", InvoiceNumber: "INV-1010", Type: "Storage", BilledDate: "2025-12-15", DueDate: "2026-01-14", Amount: money("640.00"), Balance: money("640.00"), Status: domain.StatusUnpaid, HoldingStatus: domain.HoldingTheyHaveCheck, HoldingSubStatus: domain.SubStatusMailing, ReminderDate: day("2026-01-13")},
		{InvoiceID: "inv-1012", OrderID: "o-1250041", InvoiceNumber: "INV-1012", Type: "Cleaning", BilledDate: "2025-12-01", DueDate: "2025-12-31", Amount: money("2210.40"), Balance: money("1105.20"), Status: domain.StatusPartial, HoldingStatus: domain.HoldingPAHasCheck, LastNote: "Adjuster confirmed second check"},
		{InvoiceID: "inv-1013", OrderID: "o-1250041", InvoiceNumber: "INV-1013", Type: "Contents", BilledDate: "2025-12-18", DueDate: "2026-01-17", Amount: money("4870.00"), Balance: money("4870.00"), Status: domain.StatusUnpaid, HoldingStatus: domain.HoldingNone},
		{InvoiceID: "inv-1015", OrderID: "o-1250052", InvoiceNumber: "INV-1015", Type: "Cleaning", BilledDate: "2025-11-20", DueDate: "2025-12-20", Amount: money("1320.00"), Balance: money("1320.00"), Status: domain.StatusDisputed, HoldingStatus: domain.HoldingNone, LastNote: "Customer disputes line 4"},
		{InvoiceID: "inv-1016", OrderID: "o-1250052", InvoiceNumber: "INV-1016", Type: "Storage", BilledDate: "2025-12-20", DueDate: "2026-01-19", Amount: money("480.00"), Balance: money("480.00"), Status: domain.StatusUnpaid, HoldingStatus: domain.HoldingCustomerHasCheck},
		{InvoiceID: "inv-1018", OrderID: "o-1250060", InvoiceNumber: "INV-1018", Type: "Contents", BilledDate: "2025-12-05", DueDate: "2026-01-04", Amount: money("6120.75"), Balance: money("6120.75"), Status: domain.StatusUnpaid, HoldingStatus: domain.HoldingTheyHaveCheck, HoldingSubStatus: domain.SubStatusPickup},
		{InvoiceID: "inv-1019", OrderID: "o-1250060", InvoiceNumber: "INV-1019", Type: "Deposit", BilledDate: "2025-10-28", DueDate: "2025-11-27", Amount: money("2500.00"), Balance: money("0"), Status: domain.StatusPaid, HoldingStatus: domain.HoldingNone},
		{InvoiceID: "inv-1021", OrderID: "o-1250066", InvoiceNumber: "INV-1021", Type: "Cleaning", BilledDate: "2025-12-22", DueDate: "2026-01-21", Amount: money("1875.00"), Balance: money("1875.00"), Status: domain.StatusUnpaid, HoldingStatus: domain.HoldingTheyHaveCheck, HoldingSubStatus: domain.SubStatusBringIn},
		{InvoiceID: "inv-1022", OrderID: "o-1250066", InvoiceNumber: "INV-1022", Type: "Supplement", BilledDate: "not-a-date", DueDate: "", Amount: money("310.00"), Balance: money("310.00"), Status: domain.StatusUnpaid, HoldingStatus: domain.HoldingOtherHasCheck},
		{InvoiceID: "inv-1024", OrderID: "o-1250071", InvoiceNumber: "INV-1024", Type: "Contents", BilledDate: "2025-12-28", DueDate: "2026-01-27", Amount: money("3390.10"), Balance: money("3390.10"), Status: domain.StatusUnpaid, HoldingStatus: domain.HoldingNeedsEndorsement},
		{InvoiceID: "inv-1025", OrderID: "o-1250071", InvoiceNumber: "INV-1025", Type: "Storage", BilledDate: "2025-12-28", DueDate: "2026-01-27", Amount: money("720.00"), Balance: money("0"), Status: domain.StatusPartial, HoldingStatus: domain.HoldingNone},
		{InvoiceID: "inv-1027", OrderID: "o-1250078", InvoiceNumber: "INV-1027", Type: "Cleaning", BilledDate: "2026-01-02", DueDate: "2026-02-01", Amount: money("2045.00"), Balance: money("2045.00"), Status: domain.StatusUnpaid, HoldingStatus: domain.HoldingTheyHaveCheck, HoldingSubStatus: domain.SubStatusNoResponse},
		{InvoiceID: "inv-1028", OrderID: "o-1250078", InvoiceNumber: "INV-1028", Type: "Deposit", BilledDate: "2025-12-01", DueDate: "2025-12-31", Amount: money("1500.00"), Balance: money("1500.00"), Status: domain.StatusPaid, HoldingStatus: domain.HoldingNone},
	}
}

// Events returns the existing calendar events invoices may be linked to.
func Events() []domain.Event {
	return []domain.Event{
		{EventID: "ev-501", Title: "Scope — Okafor", Start: at("2026-01-16T09:30"), EventType: domain.EventScope, OrderID: "o-1250060", CreatedBy: "u-jake"},
		{EventID: "ev-502", Title: "Pickup — Schmidt check", Start: at("2026-01-20T14:00"), EventType: domain.EventPickup, OrderID: "o-1250066", CreatedBy: "u-amy"},
		{EventID: "ev-503", Title: "Delivery — Patel contents", Start: at("2026-01-20T08:00"), EventType: domain.EventDelivery, OrderID: "o-1250041", CreatedBy: "u-tom"},
	}
}

// Reminders returns the seeded dashboard reminders.
func Reminders() []domain.Reminder {
	return []domain.Reminder{
		{ReminderID: "r-1", Section: "collections", Title: "Call Liberty Mutual re: Cotton", Detail: "Ask for endorsement status on INV-1009", CreatedAt: at("2026-01-08T10:15"), AssigneeID: "u-amy"},
		{ReminderID: "r-2", Section: "storage", Title: "Storage renewal for Nguyen", Detail: "Storage ends before final delivery", CreatedAt: at("2026-01-09T16:40"), AssigneeID: "u-tom", DueAt: day("2026-01-19")},
		{ReminderID: "r-3", Section: "collections", Title: "Chase Okafor pickup", Detail: "", CreatedAt: at("2026-01-05T09:00"), AssigneeID: "u-amy", Done: true},
		{ReminderID: "r-4", Section: "sales", Title: "Send Whitfield estimate revision", Detail: "Include supplement for den", CreatedAt: at("2026-01-11T11:20"), AssigneeID: "u-jake"},
		{ReminderID: "r-5", Section: "collections", Title: "Confirm Rivera DOP", Detail: "", CreatedAt: at("2026-01-10T13:05"), AssigneeID: "u-maria"},
	}
}

// Activities returns the read-only order activity feed.
func Activities() []domain.Activity {
	return []domain.Activity{
		{ActivityID: "a-1", OrderID: "o-1250037", At: at("2025-12-10T09:12"), Actor: "u-amy", Kind: "invoice", Summary: "INV-1009 billed"},
		{ActivityID: "a-2", OrderID: "o-1250037", At: at("2026-01-06T15:30"), Actor: "u-amy", Kind: "call", Summary: "Left voicemail for adjuster"},
		{ActivityID: "a-3", OrderID: "o-1250041", At: at("2025-12-29T10:00"), Actor: "u-jake", Kind: "payment", Summary: "Partial payment received on INV-1012"},
		{ActivityID: "a-4", OrderID: "o-1250052", At: at("2026-01-02T12:45"), Actor: "u-maria", Kind: "note", Summary: "Customer disputes INV-1015 line 4"},
		{ActivityID: "a-5", OrderID: "o-1250066", At: at("2026-01-07T08:20"), Actor: "u-tom", Kind: "delivery", Summary: "Partial delivery completed"},
	}
}

// Documents returns the read-only order document list.
func Documents() []domain.Document {
	return []domain.Document{
		{DocumentID: "d-1", OrderID: "o-1250037", Name: "Signed authorization.pdf", Kind: "authorization", UploadedAt: at("2025-11-01T10:00")},
		{DocumentID: "d-2", OrderID: "o-1250037", Name: "Contents inventory.xlsx", Kind: "inventory", UploadedAt: at("2025-11-12T14:22")},
		{DocumentID: "d-3", OrderID: "o-1250041", Name: "Estimate v2.pdf", Kind: "estimate", UploadedAt: at("2025-11-28T09:05")},
		{DocumentID: "d-4", OrderID: "o-1250078", Name: "Photos.zip", Kind: "photos", UploadedAt: at("2025-12-02T16:40")},
	}
}

// CollectionAlerts returns the statically flagged collections list.
func CollectionAlerts() []domain.CollectionAlert {
	return []domain.CollectionAlert{
		{OrderID: "o-1250052", OrderName: "Nguyen – Dover, NJ", Reasons: []domain.AlertReason{domain.ReasonNonResponsive, domain.ReasonCollectionConcern}, Balance: money("1800.00"), Rep: "MR"},
		{OrderID: "o-1250066", OrderName: "Schmidt – Flanders, NJ", Reasons: []domain.AlertReason{domain.ReasonDeliveredNotPaid}, Balance: money("2185.00"), Rep: "JK"},
		{OrderID: "o-1250060", OrderName: "Okafor – Chester, NJ", Reasons: []domain.AlertReason{domain.ReasonNonResponsive}, Balance: money("6120.75"), Rep: "AB"},
	}
}

func point(label, billed, collected, billedGoal, collectedGoal string) domain.PerformancePoint {
	return domain.PerformancePoint{
		Label:         label,
		Billed:        money(billed),
		Collected:     money(collected),
		BilledGoal:    money(billedGoal),
		CollectedGoal: money(collectedGoal),
	}
}

// Series returns the fixed performance series keyed by granularity name (day, week, month, ytd).
func Series() map[string][]domain.PerformancePoint {
	return map[string][]domain.PerformancePoint{
		"day": {
			point("Mon", "4200", "3100", "4000", "3500"),
			point("Tue", "3800", "3900", "4000", "3500"),
			point("Wed", "5100", "2800", "4000", "3500"),
			point("Thu", "2900", "3300", "4000", "3500"),
			point("Fri", "4600", "4100", "4000", "3500"),
		},
		"week": {
			point("Wk 49", "19800", "16400", "20000", "17500"),
			point("Wk 50", "21500", "18200", "20000", "17500"),
			point("Wk 51", "17200", "19900", "20000", "17500"),
			point("Wk 52", "12400", "11800", "20000", "17500"),
			point("Wk 1", "20600", "15300", "20000", "17500"),
			point("Wk 2", "22100", "17800", "20000", "17500"),
		},
		"month": {
			point("Aug", "84000", "71000", "85000", "75000"),
			point("Sep", "91500", "80200", "85000", "75000"),
			point("Oct", "88300", "79900", "85000", "75000"),
			point("Nov", "79100", "76400", "85000", "75000"),
			point("Dec", "72600", "70100", "85000", "75000"),
			point("Jan", "40400", "33100", "85000", "75000"),
		},
		"ytd": {
			point("Q1", "251000", "219500", "255000", "225000"),
			point("Q2", "263400", "238800", "255000", "225000"),
			point("Q3", "270200", "241300", "255000", "225000"),
			point("Q4", "240000", "226700", "255000", "225000"),
		},
	}
}
