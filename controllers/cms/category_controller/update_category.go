package category_controller

import (
	"net/http"
	"strings"

	category_cache "github.com/BadarHossain1/maplenest-admin-api/cache"
	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReplaceCategory godoc
// @Summary Replace a category (PUT)
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param category body models.CategoryRequest true "Category"
// @Success 200 {object} models.ApiResponse
// @Router /api/categories/{id} [put]
func ReplaceCategory(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "category")
	if !ok {
		return
	}
	var req models.CategoryRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	active := req.IsActive == nil || *req.IsActive
	saveCategory(c, id, map[string]any{
		"name":        strings.TrimSpace(req.Name),
		"slug":        slug,
		"description": req.Description,
		"image":       req.Image,
		"banner":      req.Banner,
		"is_active":   active,
		"sort_order":  req.SortOrder,
	})
}

// UpdateCategory godoc
// @Summary Update a category (PATCH)
// @Description Only the provided fields change
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param category body models.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Router /api/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "category")
	if !ok {
		return
	}
	var req models.UpdateCategoryRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Banner != nil {
		updates["banner"] = *req.Banner
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	saveCategory(c, id, updates)
}

// UpdateCategoryStatus godoc
// @Summary Show or hide a category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param status body models.UpdateCategoryStatusRequest true "Visibility"
// @Success 200 {object} models.ApiResponse
// @Router /api/categories/{id}/status [patch]
func UpdateCategoryStatus(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "category")
	if !ok {
		return
	}
	var req models.UpdateCategoryStatusRequest
	if !utils.BindJSON(c, &req) {
		return
	}
	saveCategory(c, id, map[string]any{"is_active": *req.IsActive})
}

func saveCategory(c *gin.Context, id uuid.UUID, updates map[string]any) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var cat models.Category
	if err := config.DB.WithContext(ctx).First(&cat, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[categories.update]", err, "Category")
		return
	}

	if len(updates) > 0 {
		if err := config.DB.WithContext(ctx).Model(&cat).Updates(updates).Error; err != nil {
			if utils.IsUniqueViolation(err) {
				c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with this slug already exists"))
				return
			}
			utils.RespondDBError(c, "[categories.update]", err, "Category")
			return
		}
		// keep the denormalised name on products in step
		if name, renamed := updates["name"]; renamed {
			if err := config.DB.WithContext(ctx).
				Model(&models.Product{}).
				Where("category_id = ?", id).
				Update("category_name", name).Error; err != nil {
				utils.RespondDBError(c, "[categories.update]", err, "Category")
				return
			}
		}
		category_cache.Invalidate()
	}

	out, err := loadOne(ctx, id)
	if err != nil {
		utils.RespondDBError(c, "[categories.update]", err, "Category")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", out))
}
