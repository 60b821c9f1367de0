package product_controller

import (
	"errors"
	"net/http"
	"strings"

	category_cache "github.com/BadarHossain1/maplenest-admin-api/cache"
	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateProduct godoc
// @Summary Create a product
// @Description totalStock is derived from the per-size stock
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductRequest true "Product"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	name, err := categoryName(ctx, req.CategoryID)
	if errors.Is(err, errUnknownCategory) {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request body", categoryFieldError()))
		return
	}
	if err != nil {
		utils.RespondDBError(c, "[products.create]", err, "Category")
		return
	}

	product := fromRequest(req)
	product.CategoryName = name

	if err := config.DB.WithContext(ctx).Create(&product).Error; err != nil {
		logger.L().Error("[products.create] insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}
	category_cache.Invalidate()
	services.SetCreatedResource(c, product.ID)

	logger.L().Info("[products.create] created",
		zap.String("id", product.ID.String()),
		zap.Int("totalStock", product.TotalStock),
	)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}

func fromRequest(req models.ProductRequest) models.Product {
	return models.Product{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		Images:          orEmpty(req.Images),
		Video:           req.Video,
		Price:           req.Price,
		Sizes:           orEmpty(req.Sizes),
		Colors:          orEmpty(req.Colors),
		Material:        req.Material,
		Origin:          req.Origin,
		Care:            req.Care,
		Fit:             req.Fit,
		Features:        orEmpty(req.Features),
		IsNewArrival:    req.IsNewArrival,
		IsFeatured:      req.IsFeatured,
		IsTopCollection: req.IsTopCollection,
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
