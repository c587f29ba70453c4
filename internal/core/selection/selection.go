// Package selection tracks which ledger rows are checked. A Selection is an
// immutable value: every operation returns a new one.
package selection

import (
	"fmt"
	"slices"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/core/ledger"
)

// Kind says whether an id refers to an order row or an invoice row.
type Kind string

const (
	KindOrder   Kind = "order"
	KindInvoice Kind = "invoice"
)

// ParseKind parses "order"/"orders" or "invoice"/"invoices".
func ParseKind(raw string) (Kind, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(raw)), "s") {
	case string(KindOrder):
		return KindOrder, nil
	case string(KindInvoice):
		return KindInvoice, nil
	}
	return "", fmt.Errorf("unknown selection kind %q", raw)
}

// Selection holds two independent id sets.
type Selection struct {
	orders   map[string]struct{}
	invoices map[string]struct{}
}

// Empty returns a selection with nothing checked.
func Empty() Selection {
	return Selection{}
}

func (s Selection) set(kind Kind) map[string]struct{} {
	if kind == KindOrder {
		return s.orders
	}
	return s.invoices
}

func (s Selection) with(kind Kind, set map[string]struct{}) Selection {
	if kind == KindOrder {
		s.orders = set
	} else {
		s.invoices = set
	}
	return s
}

func clone(m map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Has reports whether id is selected.
func (s Selection) Has(kind Kind, id string) bool {
	_, ok := s.set(kind)[id]
	return ok
}

// ToggleOne flips a single id.
func (s Selection) ToggleOne(kind Kind, id string) Selection {
	next := clone(s.set(kind))
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return s.with(kind, next)
}

// ToggleAll deselects the visible ids if all of them are selected, otherwise
// selects every visible id. Ids outside visible are left alone.
func (s Selection) ToggleAll(kind Kind, visible []string) Selection {
	if len(visible) == 0 {
		return s
	}
	current := s.set(kind)
	all := true
	for _, id := range visible {
		if _, ok := current[id]; !ok {
			all = false
			break
		}
	}
	next := clone(current)
	for _, id := range visible {
		if all {
			delete(next, id)
		} else {
			next[id] = struct{}{}
		}
	}
	return s.with(kind, next)
}

// Clear empties both sets.
func (s Selection) Clear() Selection {
	return Empty()
}

// OrderIDs returns the selected order ids, sorted.
func (s Selection) OrderIDs() []string { return sortedKeys(s.orders) }

// InvoiceIDs returns the selected invoice ids, sorted.
func (s Selection) InvoiceIDs() []string { return sortedKeys(s.invoices) }

func (s Selection) IsEmpty() bool {
	return len(s.orders) == 0 && len(s.invoices) == 0
}

// Effective resolves the selection to invoice ids in ledger display order.
// Explicit invoice ids win; otherwise selected orders expand to their open
// invoices within groups. Explicit ids not shown in groups follow, sorted.
func (s Selection) Effective(groups []ledger.Group) []string {
	if len(s.invoices) > 0 {
		return s.explicitInDisplayOrder(groups)
	}
	out := []string{}
	for _, g := range groups {
		if _, ok := s.orders[g.Order.OrderID]; !ok {
			continue
		}
		for _, inv := range g.Invoices {
			if inv.IsOpen() {
				out = append(out, inv.InvoiceID)
			}
		}
	}
	return out
}

func (s Selection) explicitInDisplayOrder(groups []ledger.Group) []string {
	out := make([]string, 0, len(s.invoices))
	placed := make(map[string]struct{}, len(s.invoices))
	for _, g := range groups {
		for _, inv := range g.Invoices {
			if _, ok := s.invoices[inv.InvoiceID]; !ok {
				continue
			}
			if _, dup := placed[inv.InvoiceID]; dup {
				continue
			}
			placed[inv.InvoiceID] = struct{}{}
			out = append(out, inv.InvoiceID)
		}
	}
	for _, id := range sortedKeys(s.invoices) {
		if _, ok := placed[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// Prune drops invoice ids that are no longer open and order ids that are no longer visible.
func (s Selection) Prune(openInvoiceIDs, visibleOrderIDs []string) Selection {
	keep := func(set map[string]struct{}, allowed []string) map[string]struct{} {
		ok := make(map[string]struct{}, len(allowed))
		for _, id := range allowed {
			ok[id] = struct{}{}
		}
		out := make(map[string]struct{}, len(set))
		for id := range set {
			if _, fine := ok[id]; fine {
				out[id] = struct{}{}
			}
		}
		return out
	}
	return Selection{
		orders:   keep(s.orders, visibleOrderIDs),
		invoices: keep(s.invoices, openInvoiceIDs),
	}
}

// FromIDs builds a selection from explicit id lists.
func FromIDs(orderIDs, invoiceIDs []string) Selection {
	s := Selection{orders: map[string]struct{}{}, invoices: map[string]struct{}{}}
	for _, id := range orderIDs {
		s.orders[id] = struct{}{}
	}
	for _, id := range invoiceIDs {
		s.invoices[id] = struct{}{}
	}
	return s
}
