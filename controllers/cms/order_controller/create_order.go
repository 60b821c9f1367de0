package order_controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultChannel  = "online"
	orderIDAttempts = 3
)

// CreateOrder godoc
// @Summary Create an order
// @Description Subtotal and total are recomputed from the items; orderId is generated when omitted
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body models.CreateOrderRequest true "Order"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "orderId already in use"
// @Router /api/orders [post]
func CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	order := models.Order{
		OrderID:         strings.TrimSpace(req.OrderID),
		UserEmail:       strings.ToLower(strings.TrimSpace(req.UserEmail)),
		Items:           req.Items,
		OrderSummary:    services.RecomputeSummary(req.Items, req.OrderSummary),
		ShippingAddress: req.ShippingAddress,
		Status:          req.Status,
		Channel:         strings.TrimSpace(req.Channel),
		OrderDate:       time.Now().UTC(),
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if order.Channel == "" {
		order.Channel = defaultChannel
	}
	if req.OrderDate != nil {
		order.OrderDate = req.OrderDate.UTC()
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	generated := order.OrderID == ""
	for attempt := 1; ; attempt++ {
		if generated {
			number, err := services.NewOrderNumber(order.OrderDate)
			if err != nil {
				logger.L().Error("[orders.create] order number", zap.Error(err))
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
				return
			}
			order.OrderID = number
		}

		err := config.DB.WithContext(ctx).Create(&order).Error
		if err == nil {
			break
		}
		if utils.IsUniqueViolation(err) {
			if generated && attempt < orderIDAttempts {
				order.ID = uuid.Nil
				continue
			}
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "An order with this orderId already exists"))
			return
		}
		logger.L().Error("[orders.create] insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
		return
	}
	services.SetCreatedResource(c, order.ID)

	logger.L().Info("[orders.create] created",
		zap.String("orderId", order.OrderID),
		zap.Float64("total", order.OrderSummary.Total),
	)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order created successfully", order))
}
