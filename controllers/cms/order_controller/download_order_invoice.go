package order_controller

import (
	"fmt"
	"net/http"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DownloadOrderInvoice godoc
// @Summary Download an order invoice
// @Tags Orders
// @Produce application/pdf
// @Param id path string true "Order ID"
// @Success 200 {file} file
// @Failure 404 {object} models.ApiResponse
// @Router /api/orders/{id}/invoice [get]
func DownloadOrderInvoice(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "order")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var order models.Order
	if err := config.DB.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[orders.invoice]", err, "Order")
		return
	}

	pdf, err := services.GenerateOrderInvoicePDF(&order)
	if err != nil {
		logger.L().Error("[orders.invoice] render failed", zap.String("orderId", order.OrderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, order.OrderID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
