package order_controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UpdateOrderStatus godoc
// @Summary Move an order through its lifecycle
// @Description cancelled and refunded are final, delivered may only become refunded, cancelling needs a note
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param status body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing cancellation note"
// @Failure 409 {object} models.ApiResponse "Transition not allowed"
// @Router /api/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "order")
	if !ok {
		return
	}
	var req models.UpdateOrderStatusRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var order models.Order
	if err := config.DB.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[orders.status]", err, "Order")
		return
	}

	if err := services.CheckOrderTransition(order.Status, req.Status, req.Note); err != nil {
		if errors.Is(err, services.ErrCancelNoteRequired) {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request body", map[string]string{
				"note": "A note is required when cancelling an order",
			}))
			return
		}
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Cannot change status from "+order.Status+" to "+req.Status+": "+err.Error()))
		return
	}

	updates := map[string]any{"status": req.Status}
	if req.Note != nil {
		updates["status_note"] = strings.TrimSpace(*req.Note)
	}
	previous := order.Status
	if err := config.DB.WithContext(ctx).Model(&order).Updates(updates).Error; err != nil {
		utils.RespondDBError(c, "[orders.status]", err, "Order")
		return
	}
	order.Status = req.Status
	if req.Note != nil {
		order.StatusNote = strings.TrimSpace(*req.Note)
	}

	logger.L().Info("[orders.status] changed",
		zap.String("orderId", order.OrderID),
		zap.String("from", previous),
		zap.String("to", req.Status),
	)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated successfully", order))
}
