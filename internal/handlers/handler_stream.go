package handlers

import (
	"io"
	"net/http"

	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

func registerStreamRoutes(rg *gin.RouterGroup, changes portssvc.ChangeStreamSvc) {
	rg.GET("/stream", streamChanges(changes))
}

// streamChanges godoc
// @Summary Stream store changes
// @Description Server-sent events, one "change" event per store mutation. Clients refetch what the ids point at.
// @Tags stream
// @Produce  text/event-stream
// @Success 200 {object} domain.ChangeEvent
// @Router /stream [get]
func streamChanges(changes portssvc.ChangeStreamSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		events := changes.Subscribe(c.Request.Context())
		logger.Info("Change stream opened")

		c.Header("Cache-Control", "no-cache")
		c.Header("X-Accel-Buffering", "no")
		c.Status(http.StatusOK)
		c.Stream(func(w io.Writer) bool {
			evt, ok := <-events
			if !ok {
				return false
			}
			c.SSEvent("change", evt)
			return true
		})
		logger.Info("Change stream closed")
	}
}
