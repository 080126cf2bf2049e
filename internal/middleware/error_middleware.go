package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mergington/activities/internal/app/models/dto"
	"github.com/mergington/activities/internal/pkg/apperrors"
	"github.com/mergington/activities/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Enrollment
// conflicts respond with 400 rather than 409 to keep parity with the
// documented external interface.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrActivityNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Activity not found"),
		))
		return
	case errors.Is(err, apperrors.ErrAlreadySignedUp):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Student is already signed up"),
		))
		return
	case errors.Is(err, apperrors.ErrActivityFull):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Activity is full"),
		))
		return
	case errors.Is(err, apperrors.ErrNotSignedUp):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Student is not signed up for this activity"),
		))
		return
	case errors.Is(err, apperrors.ErrValidationFailed):
		// Email is the only validated client input today
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()).WithField("email"),
		))
		return
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
		return
	}
}
