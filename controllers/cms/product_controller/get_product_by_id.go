package product_controller

import (
	"net/http"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
)

// GetProductByID godoc
// @Summary Get a product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/products/{id} [get]
func GetProductByID(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "product")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var product models.Product
	if err := config.DB.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[products.get]", err, "Product")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
