package product_controller

import (
	"net/http"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetProducts godoc
// @Summary List products
// @Description Filters: search (name, description, material), categoryId, isNewArrival, isFeatured, isTopCollection, inStock
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Search term"
// @Param categoryId query string false "Category ID"
// @Param inStock query bool false "Only products with (or without) stock"
// @Success 200 {object} models.ApiResponse
// @Router /api/products [get]
func GetProducts(c *gin.Context) {
	page := utils.ParsePage(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.Product{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := utils.LikePattern(search)
		query = query.Where(
			"LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\' OR LOWER(material) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern,
		)
	}
	if raw := c.Query("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
			return
		}
		query = query.Where("category_id = ?", id)
	}
	for param, column := range map[string]string{
		"isNewArrival":    "is_new_arrival",
		"isFeatured":      "is_featured",
		"isTopCollection": "is_top_collection",
	} {
		if v, ok := utils.QueryBool(c, param); ok {
			query = query.Where(column+" = ?", v)
		}
	}
	if inStock, ok := utils.QueryBool(c, "inStock"); ok {
		if inStock {
			query = query.Where("total_stock > 0")
		} else {
			query = query.Where("total_stock = 0")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.L().Error("[products.list] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	products := []models.Product{}
	if err := query.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&products).Error; err != nil {
		logger.L().Error("[products.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", products, page.Meta(total)))
}
