// Package httputil maps domain errors onto HTTP responses.
package httputil

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-backend/internal/errs"
)

// Error translates a sentinel-wrapped error into a status code and a
// JSON body. Internal errors are logged and masked; everything else
// carries its message through.
func Error(c *gin.Context, logger *zap.Logger, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, errs.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusUnauthorized
	default:
		logger.Error("request failed", zap.Error(err))
		message = "internal error"
	}

	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
