package category_controller

import (
	"errors"
	"fmt"
	"net/http"

	category_cache "github.com/BadarHossain1/maplenest-admin-api/cache"
	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Description Refused with 409 while products reference it, unless force=true detaches them
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param force query bool false "Detach products and delete"
// @Success 200 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "category")
	if !ok {
		return
	}
	force, _ := utils.QueryBool(c, "force")

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var detached int64
	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cat models.Category
		if err := tx.First(&cat, "id = ?", id).Error; err != nil {
			return err
		}

		var linked int64
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Count(&linked).Error; err != nil {
			return err
		}
		if linked > 0 && !force {
			return errCategoryInUse{products: linked}
		}
		if linked > 0 {
			res := tx.Model(&models.Product{}).
				Where("category_id = ?", id).
				Updates(map[string]any{"category_id": nil, "category_name": ""})
			if res.Error != nil {
				return res.Error
			}
			detached = res.RowsAffected
		}
		return tx.Delete(&cat).Error
	})

	var inUse errCategoryInUse
	if errors.As(err, &inUse) {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, inUse.Error()))
		return
	}
	if err != nil {
		utils.RespondDBError(c, "[categories.delete]", err, "Category")
		return
	}
	category_cache.Invalidate()

	logger.L().Info("[categories.delete] deleted", zap.String("id", id.String()), zap.Int64("detachedProducts", detached))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", gin.H{
		"id":               id,
		"detachedProducts": detached,
	}))
}

type errCategoryInUse struct {
	products int64
}

func (e errCategoryInUse) Error() string {
	return fmt.Sprintf("Category has %d products; pass force=true to detach them", e.products)
}
