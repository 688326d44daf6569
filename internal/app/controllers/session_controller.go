package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scolaris/scolaris/internal/app/models/dto"
	"github.com/scolaris/scolaris/internal/app/services"
	"github.com/scolaris/scolaris/internal/middleware"
	"github.com/scolaris/scolaris/internal/pkg/helpers"
)

// SessionController handles session scheduling operations
type SessionController struct {
	sessionService services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService services.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// CreateSession creates a session
// @Summary Create a session
// @Description Creates a session, enrolls the given students and notifies the audience
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSessionRequest true "Session information"
// @Success 201 {object} dto.APIResponse{data=models.Session} "Session created"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid session data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	session, err := c.sessionService.CreateSession(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: session, Timestamp: time.Now()})
}

// GetSessionByID retrieves a session
// @Summary Get a session
// @Description Retrieves a session with its enrollment and computed status
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Session} "Session retrieved"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (c *SessionController) GetSessionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.sessionService.GetSessionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: session, Timestamp: time.Now()})
}

// GetAllSessions retrieves a page of sessions
// @Summary List sessions
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Param teacherId query int false "Filter by teacher"
// @Success 200 {object} dto.APIResponse{data=[]models.Session} "Sessions retrieved"
// @Router /sessions [get]
func (c *SessionController) GetAllSessions(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	teacherID, _ := strconv.ParseInt(ctx.DefaultQuery("teacherId", "0"), 10, 64)

	sessions, total, err := c.sessionService.GetAllSessions(ctx, teacherID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       sessions,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// UpdateSession updates a session
// @Summary Update a session
// @Description Reschedules or re-targets a session; newly enrolled students and a reassigned teacher are notified
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID" Format(int64) minimum(1)
// @Param request body dto.UpdateSessionRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Session} "Session updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [put]
func (c *SessionController) UpdateSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid session data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	session, err := c.sessionService.UpdateSession(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: session, Timestamp: time.Now()})
}

// DeleteSession removes a session
// @Summary Delete a session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Session deleted"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.sessionService.DeleteSession(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Session deleted"},
		Timestamp: time.Now(),
	})
}

// UploadSupportFile attaches a support document to a session
// @Summary Upload a session support file
// @Description Stores the uploaded document and links it to the session, replacing any previous one
// @Tags sessions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID" Format(int64) minimum(1)
// @Param file formData file true "Support document"
// @Success 200 {object} dto.APIResponse{data=models.Session} "File attached"
// @Failure 400 {object} dto.ErrorResponse "No file in request"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/support [post]
func (c *SessionController) UploadSupportFile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing file").
			WithDetails("A 'file' form field is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	session, err := c.sessionService.AttachSupportFile(ctx, id, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: session, Timestamp: time.Now()})
}
