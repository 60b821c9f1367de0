package customer_controller

import (
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

// CreateCustomer godoc
// @Summary Register a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customer body models.CreateCustomerRequest true "Customer"
// @Success 201 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Router /api/users [post]
func CreateCustomer(c *gin.Context) {
	var req models.CreateCustomerRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	user := models.User{
		FullName:        strings.TrimSpace(req.FullName),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           strings.TrimSpace(req.Phone),
		Location:        strings.TrimSpace(req.Location),
		Segment:         req.Segment,
		IsActive:        req.IsActive == nil || *req.IsActive,
		IsEmailVerified: req.IsEmailVerified,
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A customer with this email already exists"))
			return
		}
		logger.L().Error("[customers.create] insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create customer"))
		return
	}
	services.SetCreatedResource(c, user.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Customer created successfully", user))
}
