package customer_controller

import (
	"net/http"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
)

// GetCustomerByID godoc
// @Summary Get a customer
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/users/{id} [get]
func GetCustomerByID(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "customer")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var user models.User
	if err := config.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[customers.get]", err, "Customer")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer fetched successfully", user))
}

// GetCustomerOrders godoc
// @Summary Orders placed by a customer
// @Description Matched on the customer's email, newest first
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse
// @Router /api/users/{id}/orders [get]
func GetCustomerOrders(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "customer")
	if !ok {
		return
	}
	page := utils.ParsePage(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var user models.User
	if err := config.DB.WithContext(ctx).Select("id", "email").First(&user, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[customers.orders]", err, "Customer")
		return
	}

	query := config.DB.WithContext(ctx).Model(&models.Order{}).Where("LOWER(user_email) = ?", user.Email)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondDBError(c, "[customers.orders]", err, "Order")
		return
	}
	orders := []models.Order{}
	if err := query.Order("order_date DESC").Limit(page.Limit).Offset(page.Offset).Find(&orders).Error; err != nil {
		utils.RespondDBError(c, "[customers.orders]", err, "Order")
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customer orders fetched successfully", orders, page.Meta(total)))
}
