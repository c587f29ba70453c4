package ledger

import (
	"strings"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// Stage is the top-level partition of the ledger: open, deposited, or a
// holding status that narrows the open partition.
type Stage string

const (
	StageOpen      Stage = "open"
	StageDeposited Stage = "deposited"
)

// Holding returns the holding status a stage narrows to, if any.
func (s Stage) Holding() (domain.HoldingStatus, bool) {
	h := domain.HoldingStatus(s)
	if s == StageOpen || s == StageDeposited || !h.Valid() {
		return "", false
	}
	return h, true
}

// ParseStage maps user input to a stage. Unknown input is the open stage.
func ParseStage(raw string) Stage {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", string(StageOpen):
		return StageOpen
	case string(StageDeposited):
		return StageDeposited
	}
	if h, err := domain.ParseHoldingStatus(raw); err == nil {
		return Stage(h)
	}
	return StageOpen
}

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func parseDirection(raw string, def Direction) Direction {
	switch Direction(strings.ToLower(strings.TrimSpace(raw))) {
	case Asc:
		return Asc
	case Desc:
		return Desc
	}
	return def
}

// InvoiceSortKey orders invoices before they are grouped.
type InvoiceSortKey string

const (
	SortDue     InvoiceSortKey = "due"
	SortBilled  InvoiceSortKey = "billed"
	SortNumber  InvoiceSortKey = "number"
	SortAmount  InvoiceSortKey = "amount"
	SortBalance InvoiceSortKey = "balance"
	SortStatus  InvoiceSortKey = "status"
)

var invoiceSortKeys = []InvoiceSortKey{SortDue, SortBilled, SortNumber, SortAmount, SortBalance, SortStatus}

// OrderSortKey orders the grouped result.
type OrderSortKey string

const (
	SortOpenBalance   OrderSortKey = "openBalance"
	SortInvoiceCount  OrderSortKey = "invoiceCount"
	SortOrderName     OrderSortKey = "orderName"
	SortBillTo        OrderSortKey = "billTo"
	SortFollowUp      OrderSortKey = "followUp"
	SortRep           OrderSortKey = "rep"
	SortPrimaryStatus OrderSortKey = "primaryStatus"
)

var orderSortKeys = []OrderSortKey{SortOpenBalance, SortInvoiceCount, SortOrderName, SortBillTo, SortFollowUp, SortRep, SortPrimaryStatus}

// AllFilter is the filter value that disables the rep or status filter.
const AllFilter = "All"

// Params are the filter, search and sort inputs of Build.
type Params struct {
	Stage       Stage          `json:"stage"`
	Rep         string         `json:"rep"`
	Status      string         `json:"status"`
	Search      string         `json:"search"`
	OrderSort   OrderSortKey   `json:"orderSort"`
	OrderDir    Direction      `json:"orderDir"`
	InvoiceSort InvoiceSortKey `json:"invoiceSort"`
	InvoiceDir  Direction      `json:"invoiceDir"`
}

// DefaultParams is the open stage sorted by due date ascending inside
// orders sorted by open balance descending.
func DefaultParams() Params {
	return Params{
		Stage:       StageOpen,
		Rep:         AllFilter,
		Status:      AllFilter,
		OrderSort:   SortOpenBalance,
		OrderDir:    Desc,
		InvoiceSort: SortDue,
		InvoiceDir:  Asc,
	}
}

// RawParams is the untyped form of Params as it arrives from a query string or flags.
type RawParams struct {
	Stage       string
	Rep         string
	Status      string
	Search      string
	OrderSort   string
	OrderDir    string
	InvoiceSort string
	InvoiceDir  string
}

// ParseParams turns raw input into Params. Unknown values fall back to defaults.
func ParseParams(raw RawParams) Params {
	p := DefaultParams()
	p.Stage = ParseStage(raw.Stage)
	if rep := strings.TrimSpace(raw.Rep); rep != "" {
		p.Rep = rep
	}
	if status := strings.TrimSpace(raw.Status); status != "" {
		if s, err := domain.ParseInvoiceStatus(status); err == nil {
			p.Status = string(s)
		}
	}
	p.Search = raw.Search

	for _, k := range orderSortKeys {
		if strings.EqualFold(string(k), strings.TrimSpace(raw.OrderSort)) {
			p.OrderSort = k
		}
	}
	for _, k := range invoiceSortKeys {
		if strings.EqualFold(string(k), strings.TrimSpace(raw.InvoiceSort)) {
			p.InvoiceSort = k
		}
	}
	p.OrderDir = parseDirection(raw.OrderDir, p.OrderDir)
	p.InvoiceDir = parseDirection(raw.InvoiceDir, p.InvoiceDir)
	return p
}

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, AllFilter)
}
