// Package ledger builds the grouped, filtered and sorted ledger view from
// raw orders and invoices.
package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Group is one order row of the ledger with the invoices shown beneath it.
type Group struct {
	Order         domain.Order         `json:"order"`
	Invoices      []domain.Invoice     `json:"invoices"`
	OpenBalance   decimal.Decimal      `json:"openBalance"`
	PrimaryStatus domain.InvoiceStatus `json:"primaryStatus"`
}

// Totals summarizes a built ledger.
type Totals struct {
	Orders      int             `json:"orders"`
	Invoices    int             `json:"invoices"`
	OpenBalance decimal.Decimal `json:"openBalance"`
}

// Partition returns the invoices belonging to a stage, in input order.
func Partition(invoices []domain.Invoice, stage Stage) []domain.Invoice {
	holding, narrowed := stage.Holding()
	out := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		switch {
		case stage == StageDeposited:
			if inv.IsDeposited() {
				out = append(out, inv)
			}
		case narrowed:
			if inv.IsOpen() && inv.HoldingStatus == holding {
				out = append(out, inv)
			}
		default:
			if inv.IsOpen() {
				out = append(out, inv)
			}
		}
	}
	return out
}

// Build runs the full ledger pipeline: partition, filter, sort invoices,
// group by order, search, then sort groups. Orders missing from orders are
// skipped and no group is ever empty.
func Build(orders []domain.Order, invoices []domain.Invoice, p Params) []Group {
	byID := make(map[string]domain.Order, len(orders))
	for _, o := range orders {
		byID[o.OrderID] = o
	}

	filtered := filter(Partition(invoices, p.Stage), byID, p)
	sortInvoices(filtered, p.InvoiceSort, p.InvoiceDir)

	groups := group(filtered, byID)

	fold := cases.Fold()
	if q := strings.TrimSpace(p.Search); q != "" {
		needle := fold.String(q)
		kept := groups[:0]
		for _, g := range groups {
			if strings.Contains(fold.String(SearchText(g)), needle) {
				kept = append(kept, g)
			}
		}
		groups = kept
	}

	sortGroups(groups, p.OrderSort, p.OrderDir, fold)
	return groups
}

// filter applies the rep and status filters. They only narrow open stages;
// the deposited stage ignores them.
func filter(invoices []domain.Invoice, orders map[string]domain.Order, p Params) []domain.Invoice {
	if p.Stage == StageDeposited {
		return invoices
	}
	repAll, statusAll := isAll(p.Rep), isAll(p.Status)
	if repAll && statusAll {
		return invoices
	}
	out := invoices[:0:0]
	for _, inv := range invoices {
		if !repAll && !strings.EqualFold(orders[inv.OrderID].Rep, strings.TrimSpace(p.Rep)) {
			continue
		}
		if !statusAll && !strings.EqualFold(string(inv.Status), strings.TrimSpace(p.Status)) {
			continue
		}
		out = append(out, inv)
	}
	return out
}

func dayOrZero(raw string) time.Time {
	t, _ := domain.ParseDay(raw)
	return t
}

func compareInvoices(a, b domain.Invoice, key InvoiceSortKey) int {
	switch key {
	case SortBilled:
		return dayOrZero(a.BilledDate).Compare(dayOrZero(b.BilledDate))
	case SortNumber:
		return strings.Compare(a.InvoiceNumber, b.InvoiceNumber)
	case SortAmount:
		return a.Amount.Cmp(b.Amount)
	case SortBalance:
		return a.Balance.Cmp(b.Balance)
	case SortStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	default:
		return dayOrZero(a.DueDate).Compare(dayOrZero(b.DueDate))
	}
}

// sortInvoices sorts stably ascending and reverses for descending, so the two
// directions are exact mirrors of each other.
func sortInvoices(invoices []domain.Invoice, key InvoiceSortKey, dir Direction) {
	sort.SliceStable(invoices, func(i, j int) bool {
		return compareInvoices(invoices[i], invoices[j], key) < 0
	})
	if dir == Desc {
		for i, j := 0, len(invoices)-1; i < j; i, j = i+1, j-1 {
			invoices[i], invoices[j] = invoices[j], invoices[i]
		}
	}
}

func group(invoices []domain.Invoice, orders map[string]domain.Order) []Group {
	idx := make(map[string]int)
	groups := []Group{}
	for _, inv := range invoices {
		order, ok := orders[inv.OrderID]
		if !ok {
			continue
		}
		i, seen := idx[inv.OrderID]
		if !seen {
			i = len(groups)
			idx[inv.OrderID] = i
			groups = append(groups, Group{Order: order, OpenBalance: decimal.Zero, PrimaryStatus: inv.Status})
		}
		groups[i].Invoices = append(groups[i].Invoices, inv)
		groups[i].OpenBalance = groups[i].OpenBalance.Add(inv.Balance)
	}
	return groups
}

// SearchText is the text a search query is matched against: the order's
// identifying fields followed by each shown invoice's number, type and status.
func SearchText(g Group) string {
	parts := []string{
		g.Order.OrderNumber,
		g.Order.Name,
		g.Order.BillToCompany,
		g.Order.BillToPerson,
		g.Order.Rep,
		domain.FormatDay(g.Order.NextFollowUp),
	}
	for _, inv := range g.Invoices {
		parts = append(parts, inv.InvoiceNumber, inv.Type, string(inv.Status))
	}
	return strings.Join(parts, " ")
}

func sortGroups(groups []Group, key OrderSortKey, dir Direction, fold cases.Caser) {
	sign := 1
	if dir == Desc {
		sign = -1
	}
	lexical := func(a, b string) int {
		if c := strings.Compare(fold.String(a), fold.String(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		switch key {
		case SortFollowUp:
			// missing follow-ups go last in both directions
			switch {
			case a.Order.NextFollowUp == nil && b.Order.NextFollowUp == nil:
				return false
			case a.Order.NextFollowUp == nil:
				return false
			case b.Order.NextFollowUp == nil:
				return true
			}
			return sign*a.Order.NextFollowUp.Compare(*b.Order.NextFollowUp) < 0
		case SortInvoiceCount:
			return sign*(len(a.Invoices)-len(b.Invoices)) < 0
		case SortOrderName:
			return sign*lexical(a.Order.Name, b.Order.Name) < 0
		case SortBillTo:
			c := lexical(a.Order.BillToCompany, b.Order.BillToCompany)
			if c == 0 {
				c = lexical(a.Order.BillToPerson, b.Order.BillToPerson)
			}
			return sign*c < 0
		case SortRep:
			return sign*lexical(a.Order.Rep, b.Order.Rep) < 0
		case SortPrimaryStatus:
			return sign*strings.Compare(string(a.PrimaryStatus), string(b.PrimaryStatus)) < 0
		default:
			return sign*a.OpenBalance.Cmp(b.OpenBalance) < 0
		}
	})
}

// Summarize counts groups, invoices and the summed open balance.
func Summarize(groups []Group) Totals {
	t := Totals{OpenBalance: decimal.Zero}
	for _, g := range groups {
		t.Orders++
		t.Invoices += len(g.Invoices)
		t.OpenBalance = t.OpenBalance.Add(g.OpenBalance)
	}
	return t
}

// VisibleOrderIDs lists the order ids of the built ledger in display order.
func VisibleOrderIDs(groups []Group) []string {
	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.Order.OrderID
	}
	return ids
}

// VisibleInvoiceIDs lists every shown invoice id in display order.
func VisibleInvoiceIDs(groups []Group) []string {
	ids := []string{}
	for _, g := range groups {
		for _, inv := range g.Invoices {
			ids = append(ids, inv.InvoiceID)
		}
	}
	return ids
}

// OpenInvoiceIDs lists the ids of open invoices.
func OpenInvoiceIDs(invoices []domain.Invoice) []string {
	ids := []string{}
	for _, inv := range invoices {
		if inv.IsOpen() {
			ids = append(ids, inv.InvoiceID)
		}
	}
	return ids
}
