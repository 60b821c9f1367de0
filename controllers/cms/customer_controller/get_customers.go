package customer_controller

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

// GetCustomers godoc
// @Summary List customers
// @Description Filters: search (name, email, location), segment, isActive
// @Tags Customers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Search term"
// @Param segment query string false "Segment (none for customers without one)"
// @Param isActive query bool false "Active filter"
// @Success 200 {object} models.ApiResponse
// @Router /api/users [get]
func GetCustomers(c *gin.Context) {
	page := utils.ParsePage(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.User{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := utils.LikePattern(search)
		query = query.Where(
			"LOWER(full_name) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\' OR LOWER(location) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern,
		)
	}
	switch segment := c.Query("segment"); segment {
	case "":
	case "none":
		query = query.Where("segment = ''")
	default:
		query = query.Where("segment = ?", segment)
	}
	if active, ok := utils.QueryBool(c, "isActive"); ok {
		query = query.Where("is_active = ?", active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.L().Error("[customers.list] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customers"))
		return
	}

	users := []models.User{}
	if err := query.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&users).Error; err != nil {
		logger.L().Error("[customers.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customers"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customers fetched successfully", users, page.Meta(total)))
}
