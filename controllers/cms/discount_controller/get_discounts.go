package discount_controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetDiscounts godoc
// @Summary List discount codes
// @Description Filters: search (code, description), type, isActive, status (active, expired, scheduled)
// @Tags Discounts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Search term"
// @Param type query string false "percentage or fixed"
// @Param isActive query bool false "Active flag"
// @Param status query string false "active, expired or scheduled, judged against now"
// @Success 200 {object} models.ApiResponse
// @Router /api/discounts [get]
func GetDiscounts(c *gin.Context) {
	page := utils.ParsePage(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.Discount{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := utils.LikePattern(search)
		query = query.Where("LOWER(code) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\'", pattern, pattern)
	}
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}
	if active, ok := utils.QueryBool(c, "isActive"); ok {
		query = query.Where("is_active = ?", active)
	}

	now := time.Now().UTC()
	switch c.Query("status") {
	case "":
	case "active":
		query = query.Where("is_active = ? AND valid_from <= ? AND valid_until >= ?", true, now, now)
	case "expired":
		query = query.Where("valid_until < ?", now)
	case "scheduled":
		query = query.Where("valid_from > ?", now)
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "status must be one of active, expired, scheduled"))
		return
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.L().Error("[discounts.list] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch discounts"))
		return
	}

	discounts := []models.Discount{}
	if err := query.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&discounts).Error; err != nil {
		logger.L().Error("[discounts.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch discounts"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Discounts fetched successfully", discounts, page.Meta(total)))
}

// GetDiscountByID godoc
// @Summary Get a discount code
// @Tags Discounts
// @Produce json
// @Param id path string true "Discount ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/discounts/{id} [get]
func GetDiscountByID(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "discount")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var d models.Discount
	if err := config.DB.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[discounts.get]", err, "Discount")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Discount fetched successfully", d))
}
