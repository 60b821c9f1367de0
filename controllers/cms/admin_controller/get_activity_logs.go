package admin_controller

import (
	"net/http"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetActivityLogs godoc
// @Summary List admin activity
// @Description Newest first. Filters: resourceType, adminEmail, action
// @Tags Activity Logs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param resourceType query string false "e.g. product, order"
// @Param adminEmail query string false "Admin email"
// @Param action query string false "e.g. created_product"
// @Success 200 {object} models.ApiResponse
// @Router /api/activity-logs [get]
func GetActivityLogs(c *gin.Context) {
	page := utils.ParsePage(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.ActivityLog{})
	if rt := c.Query("resourceType"); rt != "" {
		query = query.Where("resource_type = ?", rt)
	}
	if email := strings.TrimSpace(c.Query("adminEmail")); email != "" {
		query = query.Where("LOWER(admin_email) = ?", strings.ToLower(email))
	}
	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.L().Error("[activity-logs.list] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity logs"))
		return
	}

	logs := []models.ActivityLog{}
	if err := query.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&logs).Error; err != nil {
		logger.L().Error("[activity-logs.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity logs"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs fetched successfully", logs, page.Meta(total)))
}
