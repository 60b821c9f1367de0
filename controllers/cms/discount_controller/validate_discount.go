package discount_controller

import (
	"net/http"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
)

// ValidateDiscount godoc
// @Summary Check a code against an order amount
// @Description Returns the discount and final amount, or the reason the code does not apply
// @Tags Discounts
// @Accept json
// @Produce json
// @Param body body models.ValidateDiscountRequest true "Code and order amount"
// @Success 200 {object} models.ApiResponse{data=models.DiscountQuote}
// @Failure 404 {object} models.ApiResponse "Unknown code"
// @Router /api/discounts/validate [post]
func ValidateDiscount(c *gin.Context) {
	var req models.ValidateDiscountRequest
	if !utils.BindJSON(c, &req) {
		return
	}
	code, _ := services.NormalizeDiscountCode(req.Code)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var d models.Discount
	if err := config.DB.WithContext(ctx).First(&d, "code = ?", code).Error; err != nil {
		utils.RespondDBError(c, "[discounts.validate]", err, "Discount")
		return
	}

	quote := services.QuoteDiscount(&d, req.OrderAmount, time.Now().UTC())
	msg := "Discount applied"
	if !quote.Valid {
		msg = quote.Reason
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, msg, quote))
}
