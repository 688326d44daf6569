package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scolaris/scolaris/internal/app/models/dto"
	"github.com/scolaris/scolaris/internal/app/services"
	"github.com/scolaris/scolaris/internal/middleware"
)

// AdminController exposes maintenance operations
type AdminController struct {
	reminderService services.ReminderService
}

// NewAdminController creates a new AdminController
func NewAdminController(reminderService services.ReminderService) *AdminController {
	return &AdminController{reminderService: reminderService}
}

// TriggerReminders fires a reminder run outside the daily schedule
// @Summary Run session reminders now
// @Description Scans tomorrow's sessions and sends the reminder notifications immediately; re-running is safe, already reminded recipients are skipped
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CountResponse} "Sessions processed"
// @Router /admin/reminders/run [post]
func (c *AdminController) TriggerReminders(ctx *gin.Context) {
	processed, err := c.reminderService.RunDailyReminders(ctx, time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.CountResponse{Count: processed},
		Timestamp: time.Now(),
	})
}
