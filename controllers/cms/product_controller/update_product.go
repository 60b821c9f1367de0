package product_controller

import (
	"errors"
	"net/http"
	"strings"

	category_cache "github.com/BadarHossain1/maplenest-admin-api/cache"
	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
)

// ReplaceProduct godoc
// @Summary Replace a product (PUT)
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body models.ProductRequest true "Product"
// @Success 200 {object} models.ApiResponse
// @Router /api/products/{id} [put]
func ReplaceProduct(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "product")
	if !ok {
		return
	}
	var req models.ProductRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var existing models.Product
	if err := config.DB.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[products.replace]", err, "Product")
		return
	}

	name, err := categoryName(ctx, req.CategoryID)
	if errors.Is(err, errUnknownCategory) {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request body", categoryFieldError()))
		return
	}
	if err != nil {
		utils.RespondDBError(c, "[products.replace]", err, "Category")
		return
	}

	product := fromRequest(req)
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	product.CategoryName = name

	if err := config.DB.WithContext(ctx).Save(&product).Error; err != nil {
		utils.RespondDBError(c, "[products.replace]", err, "Product")
		return
	}
	category_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}

// UpdateProduct godoc
// @Summary Update a product (PATCH)
// @Description Only the provided fields change; totalStock follows the sizes
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body models.UpdateProductRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Router /api/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "product")
	if !ok {
		return
	}
	var req models.UpdateProductRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var product models.Product
	if err := config.DB.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[products.update]", err, "Product")
		return
	}

	if req.CategoryID != nil {
		name, err := categoryName(ctx, req.CategoryID)
		if errors.Is(err, errUnknownCategory) {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request body", categoryFieldError()))
			return
		}
		if err != nil {
			utils.RespondDBError(c, "[products.update]", err, "Category")
			return
		}
		product.CategoryID = req.CategoryID
		product.CategoryName = name
	}
	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Images != nil {
		product.Images = orEmpty(*req.Images)
	}
	if req.Video != nil {
		product.Video = *req.Video
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Sizes != nil {
		product.Sizes = orEmpty(*req.Sizes)
	}
	if req.Colors != nil {
		product.Colors = orEmpty(*req.Colors)
	}
	if req.Material != nil {
		product.Material = *req.Material
	}
	if req.Origin != nil {
		product.Origin = *req.Origin
	}
	if req.Care != nil {
		product.Care = *req.Care
	}
	if req.Fit != nil {
		product.Fit = *req.Fit
	}
	if req.Features != nil {
		product.Features = orEmpty(*req.Features)
	}
	if req.IsNewArrival != nil {
		product.IsNewArrival = *req.IsNewArrival
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.IsTopCollection != nil {
		product.IsTopCollection = *req.IsTopCollection
	}

	if err := config.DB.WithContext(ctx).Save(&product).Error; err != nil {
		utils.RespondDBError(c, "[products.update]", err, "Product")
		return
	}
	category_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}
