package customer_controller

import (
	"net/http"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetCustomerStats godoc
// @Summary Customer statistics
// @Tags Customers
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CustomerStats}
// @Router /api/users/stats [get]
func GetCustomerStats(c *gin.Context) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var users []models.User
	if err := config.DB.WithContext(ctx).Find(&users).Error; err != nil {
		logger.L().Error("[customers.stats] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customer statistics"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer statistics fetched successfully", customerStats(users, time.Now().UTC())))
}

func customerStats(users []models.User, now time.Time) models.CustomerStats {
	stats := models.CustomerStats{BySegment: map[string]int{"none": 0}}
	for _, s := range models.Segments {
		stats.BySegment[s] = 0
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	for _, u := range users {
		stats.TotalCustomers++
		if u.IsActive {
			stats.ActiveCustomers++
		}
		if u.IsEmailVerified {
			stats.VerifiedCustomers++
		}
		if !u.CreatedAt.Before(monthStart) {
			stats.NewThisMonth++
		}
		if u.Segment == "" {
			stats.BySegment["none"]++
		} else {
			stats.BySegment[u.Segment]++
		}
	}
	return stats
}
