package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trackpro/trackpro/internal/app/models/dto"
	"github.com/trackpro/trackpro/internal/pkg/apperrors"
	"github.com/trackpro/trackpro/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. The caller-facing
// message of a CustomError survives the mapping; anything unrecognized is
// logged in full and reduced to a generic internal error.
func HandleAPIError(c *gin.Context, err error) {
	message := err.Error()
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		message = customErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)))

	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)))

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)))

	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrAccountDisabled):
		// Auth failures keep the login response shape, HTTP 200. Anything
		// without an explicit account-state message collapses into the one
		// generic string.
		if customErr == nil {
			message = "Invalid email or password"
		}
		c.JSON(http.StatusOK, &dto.LoginResponse{
			Success: false,
			Message: message,
		})

	case errors.Is(err, apperrors.ErrIllegalState):
		// Business rejections keep the workflow response shape, HTTP 200
		c.JSON(http.StatusOK, &dto.ApplicationResponse{
			Success: false,
			Message: message,
		})

	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred")))
	}
}

// HandleValidationFailure renders a binding/validation error as HTTP 400
// with a field-to-message map.
func HandleValidationFailure(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}
