package dto

import (
	"github.com/SscSPs/backoffice_app/internal/core/ledger"
)

// LedgerQuery carries the ledger filter, search and sort inputs. It binds from
// the query string and from JSON bodies alike.
type LedgerQuery struct {
	Stage       string `form:"stage" json:"stage"`
	Rep         string `form:"rep" json:"rep"`
	Status      string `form:"status" json:"status"`
	Search      string `form:"search" json:"search"`
	OrderSort   string `form:"orderSort" json:"orderSort"`
	OrderDir    string `form:"orderDir" json:"orderDir" binding:"omitempty,oneof=asc desc ASC DESC"`
	InvoiceSort string `form:"invoiceSort" json:"invoiceSort"`
	InvoiceDir  string `form:"invoiceDir" json:"invoiceDir" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// ToParams converts the query into typed ledger params. Unknown values fall
// back to the defaults.
func (q LedgerQuery) ToParams() ledger.Params {
	return ledger.ParseParams(ledger.RawParams{
		Stage:       q.Stage,
		Rep:         q.Rep,
		Status:      q.Status,
		Search:      q.Search,
		OrderSort:   q.OrderSort,
		OrderDir:    q.OrderDir,
		InvoiceSort: q.InvoiceSort,
		InvoiceDir:  q.InvoiceDir,
	})
}
