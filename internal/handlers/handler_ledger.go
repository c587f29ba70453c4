package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

func newLedgerHandler(ledgerService portssvc.LedgerSvc) *ledgerHandler {
	return &ledgerHandler{ledgerService: ledgerService}
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := newLedgerHandler(ledgerService)
	rg.GET("/ledger", h.getLedger)
}

// getLedger godoc
// @Summary Build the ledger
// @Description Builds the grouped ledger for the given filters without keeping a view. Unknown sort keys fall back to the defaults.
// @Tags ledger
// @Produce  json
// @Param   stage query string false "open, deposited or a holding status"
// @Param   rep query string false "Sales rep code or All"
// @Param   status query string false "Invoice status or All"
// @Param   search query string false "Free text search"
// @Param   orderSort query string false "openBalance, invoiceCount, orderName, billTo, followUp, rep, primaryStatus"
// @Param   orderDir query string false "asc or desc"
// @Param   invoiceSort query string false "due, billed, number, amount, balance, status"
// @Param   invoiceDir query string false "asc or desc"
// @Success 200 {object} services.LedgerResult
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Router /ledger [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.LedgerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindFailed(c, logger, err)
		return
	}
	params := query.ToParams()
	logger.Debug("Building ledger", slog.String("stage", string(params.Stage)))

	result, err := h.ledgerService.BuildLedger(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to build ledger")
		return
	}
	c.JSON(http.StatusOK, result)
}
