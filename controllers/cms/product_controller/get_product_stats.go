package product_controller

import (
	"net/http"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GetProductStats godoc
// @Summary Product statistics
// @Description Counts by flag and stock level, plus inventory cost and retail value
// @Tags Products
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.ProductStats}
// @Router /api/products/stats [get]
func GetProductStats(c *gin.Context) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var products []models.Product
	if err := config.DB.WithContext(ctx).Find(&products).Error; err != nil {
		logger.L().Error("[products.stats] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product statistics"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product statistics fetched successfully", productStats(products)))
}

func productStats(products []models.Product) models.ProductStats {
	var stats models.ProductStats
	cost, retail := decimal.Zero, decimal.Zero

	for _, p := range products {
		stats.TotalProducts++
		if p.IsFeatured {
			stats.Featured++
		}
		if p.IsNewArrival {
			stats.NewArrivals++
		}
		if p.IsTopCollection {
			stats.TopCollection++
		}
		switch {
		case p.TotalStock == 0:
			stats.OutOfStock++
		case p.TotalStock < models.LowStockThreshold:
			stats.LowStock++
		}
		stats.TotalInventory += p.TotalStock

		units := decimal.NewFromInt(int64(p.TotalStock))
		cost = cost.Add(decimal.NewFromFloat(p.Price.Cost).Mul(units))
		retail = retail.Add(decimal.NewFromFloat(p.Price.Current).Mul(units))
	}

	stats.InventoryCost = cost.Round(2).InexactFloat64()
	stats.RetailValue = retail.Round(2).InexactFloat64()
	return stats
}
