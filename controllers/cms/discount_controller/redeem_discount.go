package discount_controller

import (
	"net/http"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RedeemDiscount godoc
// @Summary Record one use of a discount code
// @Description The increment is refused once usedCount reaches a non-zero usageLimit
// @Tags Discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 200 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Usage limit reached"
// @Router /api/discounts/{id}/redeem [post]
func RedeemDiscount(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "discount")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	res := config.DB.WithContext(ctx).
		Model(&models.Discount{}).
		Where("id = ?", id).
		Where("usage_limit = 0 OR used_count < usage_limit").
		Update("used_count", gorm.Expr("used_count + 1"))
	if res.Error != nil {
		utils.RespondDBError(c, "[discounts.redeem]", res.Error, "Discount")
		return
	}

	var d models.Discount
	if err := config.DB.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[discounts.redeem]", err, "Discount")
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, services.ErrUsageLimitReached.Error()))
		return
	}

	logger.L().Info("[discounts.redeem] redeemed",
		zap.String("code", d.Code),
		zap.Int("usedCount", d.UsedCount),
		zap.Int("usageLimit", d.UsageLimit),
	)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Discount redeemed", d))
}
