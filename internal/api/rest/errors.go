package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-game-pricer/internal/api/shared/errors"
	"github.com/feral-file/ff-game-pricer/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, err error) {
	if apiErr, ok := err.(*apierrors.APIError); ok {
		c.JSON(http.StatusBadRequest, apiErr)
		return
	}
	c.JSON(http.StatusBadRequest, apierrors.NewValidationError(err.Error()))
}

// respondTooManyRequests responds with a too many requests error
func respondTooManyRequests(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusTooManyRequests, apierrors.NewTooManyRequestsError(message, details...))
}

// respondError maps a service error to its status, falling back to an internal error
func respondError(c *gin.Context, err error, message string) {
	status, apiErr, ok := apierrors.FromDomain(err)
	if !ok {
		status, apiErr = http.StatusInternalServerError, apierrors.NewInternalError(message)
	}

	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("path", c.FullPath()),
			zap.Int("status", status),
		)
	}
	c.JSON(status, apiErr)
}
