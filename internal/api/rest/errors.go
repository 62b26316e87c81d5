package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/henrymaxel/platform-mvp-sub000/internal/api/shared/errors"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, err error) {
	if apiErr, ok := err.(*apierrors.APIError); ok {
		c.JSON(http.StatusUnprocessableEntity, apiErr)
		return
	}
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(err.Error()))
}

// respondUnauthorized responds with an unauthorized error
func respondUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication required"))
}

// respondError maps a service error to its API error, logging the ones that are not the client's fault
func respondError(c *gin.Context, err error, fields ...zap.Field) {
	status, apiErr, clientFault := apierrors.FromDomain(err)
	if !clientFault {
		logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("path", c.Request.URL.Path))...)
	}
	c.JSON(status, apiErr)
}
