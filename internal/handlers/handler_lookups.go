package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// lookupHandler serves the pick lists used by the dialogs.
type lookupHandler struct {
	lookupService portssvc.LookupSvc
}

func registerLookupRoutes(rg *gin.RouterGroup, lookupService portssvc.LookupSvc) {
	h := &lookupHandler{lookupService: lookupService}
	rg.GET("/events", h.listEvents)
	rg.GET("/coworkers", h.listCoworkers)
}

// listEvents godoc
// @Summary List calendar events
// @Description Lists the events invoices can be linked to, soonest first
// @Tags lookups
// @Produce  json
// @Success 200 {array} domain.Event
// @Failure 500 {object} map[string]string "Failed to list events"
// @Router /events [get]
func (h *lookupHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	events, err := h.lookupService.ListEvents(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, events)
}

// listCoworkers godoc
// @Summary List coworkers
// @Tags lookups
// @Produce  json
// @Success 200 {array} domain.Coworker
// @Failure 500 {object} map[string]string "Failed to list coworkers"
// @Router /coworkers [get]
func (h *lookupHandler) listCoworkers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	coworkers, err := h.lookupService.ListCoworkers(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list coworkers")
		return
	}
	c.JSON(http.StatusOK, coworkers)
}
