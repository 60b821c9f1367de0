package order_controller

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

// GetOrders godoc
// @Summary List orders
// @Description Newest first. Filters: status, channel, search (orderId, email), from/to on orderDate
// @Tags Orders
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Order status"
// @Param channel query string false "Sales channel"
// @Param search query string false "Order number or email"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD), inclusive"
// @Success 200 {object} models.ApiResponse
// @Router /api/orders [get]
func GetOrders(c *gin.Context) {
	page := utils.ParsePage(c)

	from, err := utils.ParseDate("from", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	to, err := utils.ParseDate("to", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if channel := c.Query("channel"); channel != "" {
		query = query.Where("channel = ?", channel)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := utils.LikePattern(search)
		query = query.Where("LOWER(order_id) LIKE ? ESCAPE '\\' OR LOWER(user_email) LIKE ? ESCAPE '\\'", pattern, pattern)
	}
	if !from.IsZero() {
		query = query.Where("order_date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("order_date < ?", to.AddDate(0, 0, 1))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.L().Error("[orders.list] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	orders := []models.Order{}
	if err := query.
		Order("order_date DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&orders).Error; err != nil {
		logger.L().Error("[orders.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched successfully", orders, page.Meta(total)))
}
