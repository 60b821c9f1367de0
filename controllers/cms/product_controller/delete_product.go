package product_controller

import (
	"net/http"

	category_cache "github.com/BadarHossain1/maplenest-admin-api/cache"
	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "product")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	res := config.DB.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		utils.RespondDBError(c, "[products.delete]", res.Error, "Product")
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	category_cache.Invalidate()

	logger.L().Info("[products.delete] deleted", zap.String("id", id.String()))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", gin.H{"id": id}))
}
