package category_controller

import (
	"net/http"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
)

// GetCategoryByID godoc
// @Summary Get a category
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "category")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	cat, err := loadOne(ctx, id)
	if err != nil {
		utils.RespondDBError(c, "[categories.get]", err, "Category")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched successfully", cat))
}
