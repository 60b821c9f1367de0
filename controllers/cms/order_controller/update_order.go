package order_controller

import (
	"net/http"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReplaceOrder godoc
// @Summary Replace an order's contents (PUT)
// @Description Status changes go through PATCH /orders/{id}/status
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param order body models.CreateOrderRequest true "Order"
// @Success 200 {object} models.ApiResponse
// @Router /api/orders/{id} [put]
func ReplaceOrder(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "order")
	if !ok {
		return
	}
	var req models.CreateOrderRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	saveOrder(c, id, func(o *models.Order) {
		o.UserEmail = strings.ToLower(strings.TrimSpace(req.UserEmail))
		o.Items = req.Items
		o.OrderSummary = req.OrderSummary
		o.ShippingAddress = req.ShippingAddress
		if ch := strings.TrimSpace(req.Channel); ch != "" {
			o.Channel = ch
		}
		if req.OrderDate != nil {
			o.OrderDate = req.OrderDate.UTC()
		}
	})
}

// UpdateOrder godoc
// @Summary Update an order (PATCH)
// @Description Only the provided fields change; totals are recomputed
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param order body models.UpdateOrderRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Router /api/orders/{id} [patch]
func UpdateOrder(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "order")
	if !ok {
		return
	}
	var req models.UpdateOrderRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	saveOrder(c, id, func(o *models.Order) {
		if req.UserEmail != nil {
			o.UserEmail = strings.ToLower(strings.TrimSpace(*req.UserEmail))
		}
		if req.Items != nil {
			o.Items = *req.Items
		}
		if req.OrderSummary != nil {
			o.OrderSummary = *req.OrderSummary
		}
		if req.ShippingAddress != nil {
			o.ShippingAddress = *req.ShippingAddress
		}
		if req.Channel != nil && strings.TrimSpace(*req.Channel) != "" {
			o.Channel = strings.TrimSpace(*req.Channel)
		}
		if req.OrderDate != nil {
			o.OrderDate = req.OrderDate.UTC()
		}
	})
}

func saveOrder(c *gin.Context, id uuid.UUID, apply func(*models.Order)) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var order models.Order
	if err := config.DB.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[orders.update]", err, "Order")
		return
	}

	apply(&order)
	order.OrderSummary = services.RecomputeSummary(order.Items, order.OrderSummary)

	if err := config.DB.WithContext(ctx).Save(&order).Error; err != nil {
		utils.RespondDBError(c, "[orders.update]", err, "Order")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order updated successfully", order))
}
