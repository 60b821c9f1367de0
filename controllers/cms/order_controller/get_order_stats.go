package order_controller

import (
	"net/http"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GetOrderStats godoc
// @Summary Order statistics
// @Description Counts by status; revenue excludes cancelled and refunded orders
// @Tags Orders
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.OrderStatsResponse}
// @Router /api/orders/stats [get]
func GetOrderStats(c *gin.Context) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var orders []models.Order
	if err := config.DB.WithContext(ctx).
		Select("id", "status", "summary_total").
		Find(&orders).Error; err != nil {
		logger.L().Error("[orders.stats] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order statistics"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order statistics fetched successfully", orderStats(orders)))
}

func orderStats(orders []models.Order) models.OrderStatsResponse {
	stats := models.OrderStatsResponse{ByStatus: make(map[string]int, len(models.OrderStatuses))}
	for _, s := range models.OrderStatuses {
		stats.ByStatus[s] = 0
	}

	revenue := decimal.Zero
	counted := 0
	for i := range orders {
		o := &orders[i]
		stats.TotalOrders++
		stats.ByStatus[o.Status]++
		if o.Countable() {
			revenue = revenue.Add(decimal.NewFromFloat(o.OrderSummary.Total))
			counted++
		}
	}

	stats.Revenue = revenue.Round(2).InexactFloat64()
	if counted > 0 {
		stats.AverageSale = revenue.Div(decimal.NewFromInt(int64(counted))).Round(2).InexactFloat64()
	}
	return stats
}
