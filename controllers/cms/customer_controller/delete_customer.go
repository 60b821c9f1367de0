package customer_controller

import (
	"net/http"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeleteCustomer godoc
// @Summary Delete a customer
// @Description Orders keep their email and count as guest purchases afterwards
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/users/{id} [delete]
func DeleteCustomer(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "customer")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	res := config.DB.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		utils.RespondDBError(c, "[customers.delete]", res.Error, "Customer")
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
		return
	}

	logger.L().Info("[customers.delete] deleted", zap.String("id", id.String()))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer deleted successfully", gin.H{"id": id}))
}
