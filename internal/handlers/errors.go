// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/doniphane/clickandship/internal/services"
	"github.com/doniphane/clickandship/internal/utils"
)

// handleServiceError maps the services' failure taxonomy onto HTTP statuses.
// Anything outside the taxonomy is logged and hidden behind a 500.
func handleServiceError(c *gin.Context, err error) {
	if !services.IsExpected(err) {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("Unhandled service error")
		utils.InternalErrorResponse(c, "")
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidArgument),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInsufficientStock):
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, services.ErrUnauthenticated):
		utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrEmailTaken):
		utils.ConflictResponse(c, err.Error())
	}
}
