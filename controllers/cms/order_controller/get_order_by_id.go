package order_controller

import (
	"net/http"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
)

// GetOrderByID godoc
// @Summary Get an order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/orders/{id} [get]
func GetOrderByID(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "order")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var order models.Order
	if err := config.DB.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[orders.get]", err, "Order")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched successfully", order))
}
