package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scolaris/scolaris/internal/app/models/dto"
	"github.com/scolaris/scolaris/internal/app/services"
	"github.com/scolaris/scolaris/internal/middleware"
)

// FeedbackController handles session feedback operations
type FeedbackController struct {
	feedbackService services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// SubmitFeedback creates or replaces the calling student's feedback
// @Summary Rate a session
// @Description Creates or replaces the calling student's rating of a session; the teacher is notified
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID" Format(int64) minimum(1)
// @Param request body dto.SubmitFeedbackRequest true "Rating"
// @Success 201 {object} dto.APIResponse{data=models.Feedback} "Feedback stored"
// @Failure 403 {object} dto.ErrorResponse "Caller not enrolled in the session"
// @Failure 404 {object} dto.ErrorResponse "Session or student profile not found"
// @Router /sessions/{id}/feedback [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	sessionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid feedback data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	feedback, err := c.feedbackService.SubmitFeedbackAsUser(ctx, sessionID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: feedback, Timestamp: time.Now()})
}

// GetSessionFeedback retrieves a session's feedback with the average rating
// @Summary Get session feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SessionFeedbackResponse} "Feedback retrieved"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/feedback [get]
func (c *FeedbackController) GetSessionFeedback(ctx *gin.Context) {
	sessionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	feedbacks, avg, count, err := c.feedbackService.GetSessionFeedback(ctx, sessionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SessionFeedbackResponse{
			Feedback:      feedbacks,
			AverageRating: avg,
			RatingCount:   count,
		},
		Timestamp: time.Now(),
	})
}

// GetStudentFeedback retrieves all feedback one student has left
// @Summary Get a student's feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Feedback} "Feedback retrieved"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/feedback [get]
func (c *FeedbackController) GetStudentFeedback(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	feedbacks, err := c.feedbackService.GetStudentFeedback(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: feedbacks, Timestamp: time.Now()})
}

// DeleteFeedback removes one feedback entry
// @Summary Delete feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feedback ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Feedback deleted"
// @Failure 404 {object} dto.ErrorResponse "Feedback not found"
// @Router /feedback/{id} [delete]
func (c *FeedbackController) DeleteFeedback(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.feedbackService.DeleteFeedback(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Feedback deleted"},
		Timestamp: time.Now(),
	})
}
