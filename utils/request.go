package utils

import (
	"net/http"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BindJSON binds the body into dst and answers 400 with per-field errors when
// binding or validation fails.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request body", FromBindError(err)))
		return false
	}
	return true
}

// ParamUUID parses the :name path parameter, answering 400 when malformed.
func ParamUUID(c *gin.Context, name, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid "+entity+" ID"))
		return uuid.Nil, false
	}
	return id, true
}

// RespondDBError maps a persistence error to 404, 409 or 500. The raw error
// only goes to the log.
func RespondDBError(c *gin.Context, tag string, err error, entity string) {
	switch {
	case IsNotFound(err):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, entity+" not found"))
	case IsUniqueViolation(err):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, entity+" already exists"))
	default:
		logger.L().Error(tag+" database error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
	}
}
