package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the dashboard widgets and the performance chart.
type dashboardHandler struct {
	dashboardService   portssvc.DashboardSvc
	performanceService portssvc.PerformanceSvc
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc, performanceService portssvc.PerformanceSvc) {
	h := &dashboardHandler{
		dashboardService:   dashboardService,
		performanceService: performanceService,
	}
	rg.GET("/dashboard", h.getDashboard)
	rg.GET("/performance", h.getPerformance)
}

// getDashboard godoc
// @Summary Get the dashboard
// @Description Returns the storage gap, unconfirmed DOP, collections and reminders widgets. Each widget carries a count and a preview; expanded widgets also carry the full list.
// @Tags dashboard
// @Produce  json
// @Param   expand query []string false "Widgets to expand: storage-gap, unconfirmed-dop, collections, reminders or all" collectionFormat(multi)
// @Param   scope query string false "Reminder scope: mine (default) or all"
// @Param   section query string false "Reminder section"
// @Param   showDone query bool false "Include done reminders"
// @Success 200 {object} services.DashboardSummary
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindFailed(c, logger, err)
		return
	}
	summary, err := h.dashboardService.Summary(c.Request.Context(), query.ToQuery(actorFrom(c)))
	if err != nil {
		respondError(c, logger, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getPerformance godoc
// @Summary Get performance chart data
// @Tags dashboard
// @Produce  json
// @Param   granularity query string false "day, week, month (default) or ytd"
// @Param   metric query string false "overview (default), billed, collected, collectionRate or outstanding"
// @Success 200 {object} performance.Chart
// @Failure 400 {object} map[string]string "Unknown granularity or metric"
// @Failure 500 {object} map[string]string "Failed to build chart"
// @Router /performance [get]
func (h *dashboardHandler) getPerformance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.PerformanceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindFailed(c, logger, err)
		return
	}
	granularity, metric, err := query.Parse()
	if err != nil {
		respondError(c, logger, err, "Failed to build chart")
		return
	}
	logger.Debug("Building chart", slog.String("granularity", string(granularity)), slog.String("metric", string(metric)))

	chart, err := h.performanceService.Chart(c.Request.Context(), granularity, metric)
	if err != nil {
		respondError(c, logger, err, "Failed to build chart")
		return
	}
	c.JSON(http.StatusOK, chart)
}
