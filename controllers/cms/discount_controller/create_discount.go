package discount_controller

import (
	"net/http"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const codeFormatMessage = "Code must be 3-32 characters of A-Z, 0-9 or -"

// CreateDiscount godoc
// @Summary Create a discount code
// @Description Codes are stored upper-case. Percentage values above 100 are rejected
// @Tags Discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param discount body models.DiscountRequest true "Discount"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Code already exists"
// @Router /api/discounts [post]
func CreateDiscount(c *gin.Context) {
	var req models.DiscountRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	code, ok := services.NormalizeDiscountCode(req.Code)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request body", map[string]string{"code": codeFormatMessage}))
		return
	}

	d := models.Discount{
		Code:              code,
		Description:       strings.TrimSpace(req.Description),
		Type:              req.Type,
		Value:             req.Value,
		MinOrderAmount:    req.MinOrderAmount,
		MaxDiscountAmount: req.MaxDiscountAmount,
		UsageLimit:        req.UsageLimit,
		ValidFrom:         req.ValidFrom.UTC(),
		ValidUntil:        req.ValidUntil.UTC(),
		IsActive:          req.IsActive == nil || *req.IsActive,
	}
	if fields := services.ValidateDiscountRules(&d); fields != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request body", fields))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&d).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A discount with this code already exists"))
			return
		}
		logger.L().Error("[discounts.create] insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create discount"))
		return
	}
	services.SetCreatedResource(c, d.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Discount created successfully", d))
}
