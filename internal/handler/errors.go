package handler

import (
	"errors"

	"cablepay-be-svc/internal/service"
	"cablepay-be-svc/pkg/logger"
	"cablepay-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the response envelope. Storage failures and unknown
// errors are logged and reported with the generic message only.
func respondError(c *gin.Context, log *logger.Logger, err error, message string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		utils.BadRequestResponse(c, "Invalid request", err)
	case errors.Is(err, service.ErrNotFound):
		utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, service.ErrConflict):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		utils.UnauthorizedResponse(c, err.Error())
	default:
		log.WithError(err).WithFields(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error(message)
		utils.InternalServerErrorResponse(c, message, err)
	}
}
