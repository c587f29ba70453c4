package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reminderHandler struct {
	reminderService portssvc.ReminderSvcFacade
}

func registerReminderRoutes(rg *gin.RouterGroup, reminderService portssvc.ReminderSvcFacade) {
	h := &reminderHandler{reminderService: reminderService}

	reminders := rg.Group("/reminders")
	{
		reminders.GET("", h.listReminders)
		reminders.POST("", h.createReminder)
		reminders.POST("/:id/toggle", h.toggleDone)
	}
}

// listReminders godoc
// @Summary List reminders
// @Description Newest first. Scope mine shows the acting user's reminders only.
// @Tags reminders
// @Produce  json
// @Param   scope query string false "mine (default) or all"
// @Param   section query string false "Section"
// @Param   showDone query bool false "Include done reminders"
// @Success 200 {object} dto.RemindersResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list reminders"
// @Router /reminders [get]
func (h *reminderHandler) listReminders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ReminderQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindFailed(c, logger, err)
		return
	}
	reminders, err := h.reminderService.ListReminders(c.Request.Context(), query.ToFilter(actorFrom(c)))
	if err != nil {
		respondError(c, logger, err, "Failed to list reminders")
		return
	}
	c.JSON(http.StatusOK, dto.RemindersResponse{Reminders: reminders, Count: len(reminders)})
}

// createReminder godoc
// @Summary Create a reminder
// @Description The assignee defaults to the acting user.
// @Tags reminders
// @Accept  json
// @Produce  json
// @Param   request body dto.CreateReminderRequest true "Reminder"
// @Success 201 {object} domain.Reminder
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create reminder"
// @Router /reminders [post]
func (h *reminderHandler) createReminder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, err)
		return
	}
	draft, err := req.ToDraft()
	if err != nil {
		respondError(c, logger, err, "Failed to create reminder")
		return
	}
	reminder, err := h.reminderService.CreateReminder(c.Request.Context(), draft, actorFrom(c))
	if err != nil {
		respondError(c, logger, err, "Failed to create reminder")
		return
	}
	logger.Info("Reminder created", slog.String("reminder_id", reminder.ReminderID))
	c.JSON(http.StatusCreated, reminder)
}

// toggleDone godoc
// @Summary Toggle a reminder's done flag
// @Tags reminders
// @Produce  json
// @Param   id path string true "Reminder ID"
// @Success 200 {object} domain.Reminder
// @Failure 404 {object} map[string]string "Reminder not found"
// @Failure 500 {object} map[string]string "Failed to toggle reminder"
// @Router /reminders/{id}/toggle [post]
func (h *reminderHandler) toggleDone(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("reminder_id", c.Param("id")))
	reminder, err := h.reminderService.ToggleDone(c.Request.Context(), c.Param("id"), actorFrom(c))
	if err != nil {
		respondError(c, logger, err, "Failed to toggle reminder")
		return
	}
	c.JSON(http.StatusOK, reminder)
}
