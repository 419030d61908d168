// internal/handlers/common.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/artisanmarket/backend/internal/services"
	"github.com/artisanmarket/backend/internal/utils"
)

// respondServiceError maps the service error taxonomy onto the response
// envelope. Anything outside the taxonomy is a store/transport failure
// and surfaces as a 500.
func respondServiceError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, services.ErrInvalidInput):
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, services.ErrDuplicateID):
		utils.ErrorResponse(c, http.StatusConflict, "CONFLICT", err.Error(), nil)
	default:
		logrus.WithError(err).Error("Unhandled service error")
		utils.InternalErrorResponse(c, "")
	}
}
