package services

import (
	"context"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreatedResourceKey carries the id of a row created by a POST handler so the
// activity log can reference it.
const CreatedResourceKey = "createdResourceID"

func SetCreatedResource(c *gin.Context, id uuid.UUID) {
	c.Set(CreatedResourceKey, id.String())
}

// RecordActivity stores one activity log entry.
func RecordActivity(ctx context.Context, entry models.ActivityLog) error {
	ctx, cancel := config.WithRequestTimeout(ctx)
	defer cancel()
	return config.DB.WithContext(ctx).Create(&entry).Error
}
