package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles the bulk invoice actions.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("/:id", h.getInvoice)
		invoices.POST("/status", h.updateStatus)
		invoices.POST("/events", h.linkEvent)
		invoices.DELETE("/:id/event", h.unlinkEvent)
		invoices.POST("/mark-paid", h.markPaid)
		invoices.POST("/dispute", h.dispute)
		invoices.POST("/audit", h.audit)
	}
}

// getInvoice godoc
// @Summary Get an invoice
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} domain.Invoice
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("invoice_id", c.Param("id")))
	inv, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// updateStatus godoc
// @Summary Update invoice status
// @Description Sets status, holding status and sub-status on every listed invoice. The sub-status is cleared unless the holding status is "They have check".
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   request body dto.UpdateStatusRequest true "Status update"
// @Success 200 {object} dto.InvoicesResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to update status"
// @Router /invoices/status [post]
func (h *invoiceHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, err)
		return
	}
	payload, err := req.ToStatusPayload()
	if err != nil {
		respondError(c, logger, err, "Failed to update status")
		return
	}

	logger.Info("Received request to update invoice status", slog.Int("invoice_count", len(req.InvoiceIDs)))
	updated, err := h.invoiceService.UpdateStatus(c.Request.Context(), req.InvoiceIDs, payload, actorFrom(c))
	if err != nil {
		respondError(c, logger, err, "Failed to update status")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoicesResponse(updated))
}

// linkEvent godoc
// @Summary Link invoices to an event
// @Description Links every listed invoice to an existing event or to a newly created one. Each invoice's reminder moves to the event date unless it is already earlier.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   request body dto.LinkEventRequest true "Event link"
// @Success 200 {object} dto.InvoicesResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to link event"
// @Router /invoices/events [post]
func (h *invoiceHandler) linkEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LinkEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		respondError(c, logger, err, "Failed to link event")
		return
	}

	logger.Info("Received request to link event", slog.String("mode", req.Mode), slog.Int("invoice_count", len(req.InvoiceIDs)))
	updated, err := h.invoiceService.LinkEvent(c.Request.Context(), req.InvoiceIDs, cmd, actorFrom(c))
	if err != nil {
		respondError(c, logger, err, "Failed to link event")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoicesResponse(updated))
}

// unlinkEvent godoc
// @Summary Unlink an invoice's event
// @Description Removes the linked event. The reminder date is kept.
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} domain.Invoice
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to unlink event"
// @Router /invoices/{id}/event [delete]
func (h *invoiceHandler) unlinkEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("invoice_id", c.Param("id")))
	inv, err := h.invoiceService.UnlinkEvent(c.Request.Context(), c.Param("id"), actorFrom(c))
	if err != nil {
		respondError(c, logger, err, "Failed to unlink event")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// markPaid godoc
// @Summary Mark invoices paid
// @Description Sets status Paid and balance zero, which moves the invoices to the deposited stage.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   request body dto.InvoiceIDsRequest true "Invoices"
// @Success 200 {object} dto.InvoicesResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to mark invoices paid"
// @Router /invoices/mark-paid [post]
func (h *invoiceHandler) markPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InvoiceIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, err)
		return
	}
	updated, err := h.invoiceService.MarkPaid(c.Request.Context(), req.InvoiceIDs, actorFrom(c))
	if err != nil {
		respondError(c, logger, err, "Failed to mark invoices paid")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoicesResponse(updated))
}

// dispute godoc
// @Summary Dispute invoices
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   request body dto.DisputeRequest true "Dispute"
// @Success 200 {object} dto.InvoicesResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to dispute invoices"
// @Router /invoices/dispute [post]
func (h *invoiceHandler) dispute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, err)
		return
	}
	updated, err := h.invoiceService.Dispute(c.Request.Context(), req.InvoiceIDs, req.Reason, actorFrom(c))
	if err != nil {
		respondError(c, logger, err, "Failed to dispute invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoicesResponse(updated))
}

// audit godoc
// @Summary Add an audit note
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   request body dto.AuditRequest true "Audit note"
// @Success 200 {object} dto.InvoicesResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to record audit note"
// @Router /invoices/audit [post]
func (h *invoiceHandler) audit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, err)
		return
	}
	updated, err := h.invoiceService.Audit(c.Request.Context(), req.InvoiceIDs, req.Note, actorFrom(c))
	if err != nil {
		respondError(c, logger, err, "Failed to record audit note")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoicesResponse(updated))
}
