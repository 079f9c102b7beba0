package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkravch/studyplan/internal/app/models/dto"
	"github.com/dkravch/studyplan/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP status codes and the uniform
// {"message": ...} error body. Every handler funnels its failures through
// here so nothing crashes the process.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("Student not found"))
	case errors.Is(err, apperrors.ErrSubjectNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("Subject not found"))
	case errors.Is(err, apperrors.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("Academic plan not found"))
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse("User already exists"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid username or password"))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		// Validation messages surface the offending constraint.
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse(err.Error()))
	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenMissing), errors.Is(err, apperrors.ErrInvalidFormat):
		c.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Invalid token."))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewMessageResponse("Internal server error"))
	}
}
