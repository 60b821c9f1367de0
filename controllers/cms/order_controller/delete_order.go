package order_controller

import (
	"net/http"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeleteOrder godoc
// @Summary Delete an order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/orders/{id} [delete]
func DeleteOrder(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "order")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	res := config.DB.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		utils.RespondDBError(c, "[orders.delete]", res.Error, "Order")
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	logger.L().Info("[orders.delete] deleted", zap.String("id", id.String()))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order deleted successfully", gin.H{"id": id}))
}
