package category_controller

import (
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

// CreateCategory godoc
// @Summary Create a category
// @Description The slug is derived from the name when omitted
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body models.CategoryRequest true "Category"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Slug already in use"
// @Router /api/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if slug == "" {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request body", map[string]string{
			"slug": "Could not derive a slug from the name; provide one",
		}))
		return
	}

	cat := models.Category{
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		Description: req.Description,
		Image:       req.Image,
		Banner:      req.Banner,
		IsActive:    req.IsActive == nil || *req.IsActive,
		SortOrder:   req.SortOrder,
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&cat).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with this slug already exists"))
			return
		}
		logger.L().Error("[categories.create] insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}
	category_cache.Invalidate()
	services.SetCreatedResource(c, cat.ID)

	logger.L().Info("[categories.create] created", zap.String("id", cat.ID.String()), zap.String("slug", cat.Slug))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", withProducts(cat, 0)))
}
