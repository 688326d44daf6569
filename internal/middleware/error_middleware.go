package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scolaris/scolaris/internal/app/models/dto"
	"github.com/scolaris/scolaris/internal/app/repositories"
	"github.com/scolaris/scolaris/internal/pkg/apperrors"
	"github.com/scolaris/scolaris/internal/pkg/logger"
)

// HandleAPIError maps service and repository errors to the standard error
// response. Controllers call it for every non-nil service error.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	message := ""
	if errors.As(err, &customErr) {
		message = customErr.Message
	}

	respond := func(status int, code dto.ErrorCode, fallback string) {
		if message == "" {
			message = fallback
		}
		detail := dto.NewErrorDetail(code, message)
		if customErr != nil && customErr.Details != nil {
			detail = detail.WithDetails(customErr.Details)
		}
		c.JSON(status, dto.NewErrorResponse(detail))
	}

	switch {
	case isNotFound(err):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case isConflict(err):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(http.StatusForbidden, dto.ErrorCodeAccountDisabled, "Account is disabled")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenRevoked),
		errors.Is(err, apperrors.ErrInvalidFormat), errors.Is(err, repositories.ErrTokenRevoked):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTokenNotFound), errors.Is(err, repositories.ErrTokenNotFound):
		respond(http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	case isValidation(err):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())
	case errors.Is(err, apperrors.ErrBadRequest):
		respond(http.StatusBadRequest, dto.ErrorCodeResourceInvalid, err.Error())
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func isNotFound(err error) bool {
	targets := []error{
		apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrTeacherNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrSubjectNotFound,
		apperrors.ErrChapterNotFound,
		apperrors.ErrSessionNotFound,
		apperrors.ErrNotificationNotFound,
		apperrors.ErrAttendanceNotFound,
		apperrors.ErrAssignmentNotFound,
		apperrors.ErrSubmissionNotFound,
		apperrors.ErrFeedbackNotFound,
		repositories.ErrUserNotFound,
		repositories.ErrTeacherNotFound,
		repositories.ErrStudentNotFound,
		repositories.ErrSubjectNotFound,
		repositories.ErrChapterNotFound,
		repositories.ErrSessionNotFound,
		repositories.ErrNotificationNotFound,
		repositories.ErrAttendanceNotFound,
		repositories.ErrAssignmentNotFound,
		repositories.ErrSubmissionNotFound,
		repositories.ErrFeedbackNotFound,
	}
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isConflict(err error) bool {
	return errors.Is(err, apperrors.ErrEmailAlreadyExists) ||
		errors.Is(err, apperrors.ErrSubjectAlreadyExists) ||
		errors.Is(err, apperrors.ErrConflict) ||
		errors.Is(err, repositories.ErrEmailAlreadyExists) ||
		errors.Is(err, repositories.ErrSubjectAlreadyExists)
}

func isValidation(err error) bool {
	return errors.Is(err, apperrors.ErrValidationFailed) ||
		errors.Is(err, apperrors.ErrSessionDateInPast) ||
		errors.Is(err, apperrors.ErrInvalidTimeRange) ||
		errors.Is(err, apperrors.ErrMalformedTime) ||
		errors.Is(err, apperrors.ErrInvalidAttendanceStatus) ||
		errors.Is(err, apperrors.ErrInvalidGrade) ||
		errors.Is(err, apperrors.ErrInvalidRating)
}
