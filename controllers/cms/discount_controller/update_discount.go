package discount_controller

import (
	"context"
	"net/http"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
)

// ReplaceDiscount godoc
// @Summary Replace a discount code (PUT)
// @Description Every field is overwritten; usedCount is kept
// @Tags Discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Param discount body models.DiscountRequest true "Discount"
// @Success 200 {object} models.ApiResponse
// @Router /api/discounts/{id} [put]
func ReplaceDiscount(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "discount")
	if !ok {
		return
	}
	var req models.DiscountRequest
	if !utils.BindJSON(c, &req) {
		return
	}
	code, valid := services.NormalizeDiscountCode(req.Code)
	if !valid {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request body", map[string]string{"code": codeFormatMessage}))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var d models.Discount
	if err := config.DB.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[discounts.replace]", err, "Discount")
		return
	}
	d.Code = code
	d.Description = strings.TrimSpace(req.Description)
	d.Type = req.Type
	d.Value = req.Value
	d.MinOrderAmount = req.MinOrderAmount
	d.MaxDiscountAmount = req.MaxDiscountAmount
	d.UsageLimit = req.UsageLimit
	d.ValidFrom = req.ValidFrom.UTC()
	d.ValidUntil = req.ValidUntil.UTC()
	d.IsActive = req.IsActive == nil || *req.IsActive

	saveDiscount(ctx, c, "[discounts.replace]", &d)
}

// UpdateDiscount godoc
// @Summary Update a discount code
// @Description Only the provided fields change; the merged result must still satisfy the discount rules
// @Tags Discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Param discount body models.UpdateDiscountRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Router /api/discounts/{id} [patch]
func UpdateDiscount(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "discount")
	if !ok {
		return
	}
	var req models.UpdateDiscountRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var d models.Discount
	if err := config.DB.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[discounts.update]", err, "Discount")
		return
	}

	if req.Code != nil {
		code, valid := services.NormalizeDiscountCode(*req.Code)
		if !valid {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request body", map[string]string{"code": codeFormatMessage}))
			return
		}
		d.Code = code
	}
	if req.Description != nil {
		d.Description = strings.TrimSpace(*req.Description)
	}
	if req.Type != nil {
		d.Type = *req.Type
	}
	if req.Value != nil {
		d.Value = *req.Value
	}
	if req.MinOrderAmount != nil {
		d.MinOrderAmount = *req.MinOrderAmount
	}
	if req.MaxDiscountAmount != nil {
		d.MaxDiscountAmount = *req.MaxDiscountAmount
	}
	if req.UsageLimit != nil {
		d.UsageLimit = *req.UsageLimit
	}
	if req.ValidFrom != nil {
		d.ValidFrom = req.ValidFrom.UTC()
	}
	if req.ValidUntil != nil {
		d.ValidUntil = req.ValidUntil.UTC()
	}
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}

	saveDiscount(ctx, c, "[discounts.update]", &d)
}

// saveDiscount checks the merged record against the discount rules before
// writing it.
func saveDiscount(ctx context.Context, c *gin.Context, tag string, d *models.Discount) {
	if fields := services.ValidateDiscountRules(d); fields != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request body", fields))
		return
	}

	if err := config.DB.WithContext(ctx).Save(d).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A discount with this code already exists"))
			return
		}
		utils.RespondDBError(c, tag, err, "Discount")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Discount updated successfully", d))
}

// DeleteDiscount godoc
// @Summary Delete a discount code
// @Tags Discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/discounts/{id} [delete]
func DeleteDiscount(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "discount")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	res := config.DB.WithContext(ctx).Delete(&models.Discount{}, "id = ?", id)
	if res.Error != nil {
		utils.RespondDBError(c, "[discounts.delete]", res.Error, "Discount")
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Discount not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Discount deleted successfully", gin.H{"id": id}))
}
