package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/dialog"
	"github.com/SscSPs/backoffice_app/internal/core/ledger"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/selection"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// viewHandler exposes ledger sessions: their params, selection, dialog and toast.
type viewHandler struct {
	viewService portssvc.ViewSvcFacade
}

func newViewHandler(vs portssvc.ViewSvcFacade) *viewHandler {
	return &viewHandler{viewService: vs}
}

// registerViewRoutes registers routes related to view sessions.
func registerViewRoutes(rg *gin.RouterGroup, viewService portssvc.ViewSvcFacade) {
	h := newViewHandler(viewService)

	rg.POST("/views", h.createView)
	view := rg.Group("/views/:view_id")
	{
		view.GET("", h.getView)
		view.PUT("/params", h.setParams)
		view.GET("/ledger", h.getLedger)

		sel := view.Group("/selection")
		sel.POST("/toggle", h.toggle)
		sel.POST("/toggle-all", h.toggleAll)
		sel.DELETE("", h.clearSelection)
		sel.GET("/effective", h.effectiveSelection)

		dlg := view.Group("/dialog")
		dlg.GET("", h.getDialog)
		dlg.POST("", h.openDialog)
		dlg.PATCH("", h.updateDraft)
		dlg.POST("/submit", h.submitDialog)
		dlg.DELETE("", h.cancelDialog)

		view.GET("/toast", h.getToast)
		view.DELETE("/toast", h.dismissToast)
	}
}

func (h *viewHandler) logger(c *gin.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("view_id", c.Param("view_id")))
}

// createView godoc
// @Summary Create a ledger view
// @Description Opens a server-side ledger session holding filters, selection, dialog and toast. The body is optional.
// @Tags views
// @Accept  json
// @Produce  json
// @Param   request body dto.CreateViewRequest false "Initial params"
// @Success 201 {object} services.ViewState
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 500 {object} map[string]string "Failed to create view"
// @Router /views [post]
func (h *viewHandler) createView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateViewRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindFailed(c, logger, err)
		return
	}
	params := ledger.DefaultParams()
	if req.Params != nil {
		params = req.Params.ToParams()
	}

	state, err := h.viewService.CreateView(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to create view")
		return
	}
	logger.Info("View created", slog.String("view_id", state.ViewID))
	c.JSON(http.StatusCreated, state)
}

// getView godoc
// @Summary Get a view
// @Tags views
// @Produce  json
// @Param   view_id path string true "View ID"
// @Success 200 {object} services.ViewState
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{view_id} [get]
func (h *viewHandler) getView(c *gin.Context) {
	state, err := h.viewService.GetView(c.Request.Context(), c.Param("view_id"))
	if err != nil {
		respondError(c, h.logger(c), err, "Failed to retrieve view")
		return
	}
	c.JSON(http.StatusOK, state)
}

// setParams godoc
// @Summary Change a view's filters and sorting
// @Description Replaces the ledger params. Selected rows that are no longer visible are dropped.
// @Tags views
// @Accept  json
// @Produce  json
// @Param   view_id path string true "View ID"
// @Param   request body dto.LedgerQuery true "Ledger params"
// @Success 200 {object} services.ViewState
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{view_id}/params [put]
func (h *viewHandler) setParams(c *gin.Context) {
	logger := h.logger(c)
	var req dto.LedgerQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, err)
		return
	}
	state, err := h.viewService.SetParams(c.Request.Context(), c.Param("view_id"), req.ToParams())
	if err != nil {
		respondError(c, logger, err, "Failed to update view params")
		return
	}
	c.JSON(http.StatusOK, state)
}

// getLedger godoc
// @Summary Build a view's ledger
// @Tags views
// @Produce  json
// @Param   view_id path string true "View ID"
// @Success 200 {object} services.LedgerView
// @Failure 404 {object} map[string]string "View not found"
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Router /views/{view_id}/ledger [get]
func (h *viewHandler) getLedger(c *gin.Context) {
	lv, err := h.viewService.Ledger(c.Request.Context(), c.Param("view_id"))
	if err != nil {
		respondError(c, h.logger(c), err, "Failed to build ledger")
		return
	}
	c.JSON(http.StatusOK, lv)
}

// toggle godoc
// @Summary Toggle one row
// @Description Checks or unchecks one visible order or open invoice row.
// @Tags selection
// @Accept  json
// @Produce  json
// @Param   view_id path string true "View ID"
// @Param   request body dto.ToggleRequest true "Row"
// @Success 200 {object} services.ViewState
// @Failure 400 {object} map[string]string "Invalid input or row not visible"
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{view_id}/selection/toggle [post]
func (h *viewHandler) toggle(c *gin.Context) {
	logger := h.logger(c)
	var req dto.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, err)
		return
	}
	kind, err := parseSelectionKind(req.Kind)
	if err != nil {
		respondError(c, logger, err, "Failed to toggle selection")
		return
	}
	state, err := h.viewService.Toggle(c.Request.Context(), c.Param("view_id"), kind, req.ID)
	if err != nil {
		respondError(c, logger, err, "Failed to toggle selection")
		return
	}
	c.JSON(http.StatusOK, state)
}

// toggleAll godoc
// @Summary Toggle every visible row of a kind
// @Description Deselects the visible rows when all of them are selected, otherwise selects them all. Hidden rows are untouched.
// @Tags selection
// @Accept  json
// @Produce  json
// @Param   view_id path string true "View ID"
// @Param   request body dto.ToggleAllRequest true "Kind"
// @Success 200 {object} services.ViewState
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{view_id}/selection/toggle-all [post]
func (h *viewHandler) toggleAll(c *gin.Context) {
	logger := h.logger(c)
	var req dto.ToggleAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, err)
		return
	}
	kind, err := parseSelectionKind(req.Kind)
	if err != nil {
		respondError(c, logger, err, "Failed to toggle selection")
		return
	}
	state, err := h.viewService.ToggleAll(c.Request.Context(), c.Param("view_id"), kind)
	if err != nil {
		respondError(c, logger, err, "Failed to toggle selection")
		return
	}
	c.JSON(http.StatusOK, state)
}

// clearSelection godoc
// @Summary Clear the selection
// @Tags selection
// @Produce  json
// @Param   view_id path string true "View ID"
// @Success 200 {object} services.ViewState
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{view_id}/selection [delete]
func (h *viewHandler) clearSelection(c *gin.Context) {
	state, err := h.viewService.ClearSelection(c.Request.Context(), c.Param("view_id"))
	if err != nil {
		respondError(c, h.logger(c), err, "Failed to clear selection")
		return
	}
	c.JSON(http.StatusOK, state)
}

// effectiveSelection godoc
// @Summary Get the effective selection
// @Description Explicit invoice ids when any, otherwise the open invoices of the selected orders.
// @Tags selection
// @Produce  json
// @Param   view_id path string true "View ID"
// @Success 200 {object} dto.EffectiveSelectionResponse
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{view_id}/selection/effective [get]
func (h *viewHandler) effectiveSelection(c *gin.Context) {
	ids, err := h.viewService.EffectiveSelection(c.Request.Context(), c.Param("view_id"))
	if err != nil {
		respondError(c, h.logger(c), err, "Failed to compute selection")
		return
	}
	c.JSON(http.StatusOK, dto.ToEffectiveSelectionResponse(ids))
}

// getDialog godoc
// @Summary Get the dialog
// @Tags dialog
// @Produce  json
// @Param   view_id path string true "View ID"
// @Success 200 {object} dialog.Snapshot
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{view_id}/dialog [get]
func (h *viewHandler) getDialog(c *gin.Context) {
	snap, err := h.viewService.GetDialog(c.Request.Context(), c.Param("view_id"))
	if err != nil {
		respondError(c, h.logger(c), err, "Failed to retrieve dialog")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// openDialog godoc
// @Summary Open a dialog
// @Description Opens a dialog for the effective selection with a draft prefilled from the first target invoice. Only one dialog may be open at a time.
// @Tags dialog
// @Accept  json
// @Produce  json
// @Param   view_id path string true "View ID"
// @Param   request body dto.OpenDialogRequest true "Dialog kind"
// @Success 200 {object} dialog.Snapshot
// @Failure 400 {object} map[string]string "Unknown kind or nothing selected"
// @Failure 404 {object} map[string]string "View not found"
// @Failure 409 {object} map[string]string "Another dialog is open"
// @Router /views/{view_id}/dialog [post]
func (h *viewHandler) openDialog(c *gin.Context) {
	logger := h.logger(c)
	var req dto.OpenDialogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, err)
		return
	}
	kind, err := dialog.ParseKind(req.Kind)
	if err != nil {
		respondError(c, logger, err, "Failed to open dialog")
		return
	}
	snap, err := h.viewService.OpenDialog(c.Request.Context(), c.Param("view_id"), kind)
	if err != nil {
		respondError(c, logger, err, "Failed to open dialog")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// updateDraft godoc
// @Summary Edit the dialog draft
// @Description Applies a partial edit. Fields that do not belong to the open dialog are ignored.
// @Tags dialog
// @Accept  json
// @Produce  json
// @Param   view_id path string true "View ID"
// @Param   request body dto.DialogPatchRequest true "Draft patch"
// @Success 200 {object} dialog.Snapshot
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "View not found"
// @Failure 409 {object} map[string]string "No dialog in draft"
// @Router /views/{view_id}/dialog [patch]
func (h *viewHandler) updateDraft(c *gin.Context) {
	logger := h.logger(c)
	var req dto.DialogPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, err)
		return
	}
	snap, err := h.viewService.UpdateDraft(c.Request.Context(), c.Param("view_id"), req.Patch)
	if err != nil {
		respondError(c, logger, err, "Failed to update draft")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// submitDialog godoc
// @Summary Submit the dialog
// @Description Validates the draft and applies it to the target invoices. On success the dialog closes and a toast is shown; on failure the dialog returns to draft with the error recorded.
// @Tags dialog
// @Produce  json
// @Param   view_id path string true "View ID"
// @Success 200 {object} services.ViewState
// @Failure 400 {object} map[string]string "Draft failed validation"
// @Failure 404 {object} map[string]string "View not found"
// @Failure 409 {object} map[string]string "No dialog in draft"
// @Failure 500 {object} map[string]string "Failed to submit dialog"
// @Router /views/{view_id}/dialog/submit [post]
func (h *viewHandler) submitDialog(c *gin.Context) {
	logger := h.logger(c)
	state, err := h.viewService.SubmitDialog(c.Request.Context(), c.Param("view_id"), actorFrom(c))
	if err != nil {
		respondError(c, logger, err, "Failed to submit dialog")
		return
	}
	logger.Info("Dialog submitted")
	c.JSON(http.StatusOK, state)
}

// cancelDialog godoc
// @Summary Cancel the dialog
// @Tags dialog
// @Produce  json
// @Param   view_id path string true "View ID"
// @Success 200 {object} dialog.Snapshot
// @Failure 404 {object} map[string]string "View not found"
// @Failure 409 {object} map[string]string "No dialog in draft"
// @Router /views/{view_id}/dialog [delete]
func (h *viewHandler) cancelDialog(c *gin.Context) {
	snap, err := h.viewService.CancelDialog(c.Request.Context(), c.Param("view_id"))
	if err != nil {
		respondError(c, h.logger(c), err, "Failed to cancel dialog")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// getToast godoc
// @Summary Get the current toast
// @Description Returns 204 when no toast is showing or the last one expired.
// @Tags toast
// @Produce  json
// @Param   view_id path string true "View ID"
// @Success 200 {object} toast.Toast
// @Success 204 "No toast"
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{view_id}/toast [get]
func (h *viewHandler) getToast(c *gin.Context) {
	t, err := h.viewService.CurrentToast(c.Request.Context(), c.Param("view_id"))
	if err != nil {
		respondError(c, h.logger(c), err, "Failed to retrieve toast")
		return
	}
	if t == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, t)
}

// dismissToast godoc
// @Summary Dismiss the toast
// @Tags toast
// @Param   view_id path string true "View ID"
// @Success 204 "Dismissed"
// @Failure 404 {object} map[string]string "View not found"
// @Router /views/{view_id}/toast [delete]
func (h *viewHandler) dismissToast(c *gin.Context) {
	if err := h.viewService.DismissToast(c.Request.Context(), c.Param("view_id")); err != nil {
		respondError(c, h.logger(c), err, "Failed to dismiss toast")
		return
	}
	c.Status(http.StatusNoContent)
}

func parseSelectionKind(raw string) (selection.Kind, error) {
	kind, err := selection.ParseKind(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return kind, nil
}
