package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/freejob-server/internal/logger"
	"github.com/dtroode/freejob-server/internal/model"
)

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInvalidEmail):
		return http.StatusBadRequest, "invalid email"
	case errors.Is(err, model.ErrInvalidPasswordHash), errors.Is(err, model.ErrEmptyPassword):
		return http.StatusBadRequest, "invalid password"
	case errors.Is(err, model.ErrInvalidOffer):
		return http.StatusBadRequest, "invalid offer"
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, model.ErrUserLocked):
		return http.StatusForbidden, "user is locked"
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, model.ErrAlreadyExists):
		return http.StatusConflict, "already exists"
	case errors.Is(err, model.ErrOfferNotActive):
		return http.StatusConflict, "offer is not active"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// handleError writes the response for a service error. Only server errors are logged as errors.
func handleError(c *gin.Context, lg *logger.Logger, op string, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		lg.Error(op+" failed", "error", err.Error())
		_ = c.Error(err)
	} else {
		lg.Debug(op+" rejected", "status", status, "error", err.Error())
	}

	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

// handleBindError writes the response for a request that failed decoding or validation.
func handleBindError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if isValidationError(err) {
		status = http.StatusUnprocessableEntity
	}

	c.AbortWithStatusJSON(status, errorResponse{
		Error:   "invalid request",
		Details: validationDetails(err),
	})
}
