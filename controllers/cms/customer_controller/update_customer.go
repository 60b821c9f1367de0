package customer_controller

import (
	"net/http"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReplaceCustomer godoc
// @Summary Replace a customer (PUT)
// @Description Every field is overwritten; omitted optional fields are cleared
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param customer body models.CreateCustomerRequest true "Customer"
// @Success 200 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Router /api/users/{id} [put]
func ReplaceCustomer(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "customer")
	if !ok {
		return
	}
	var req models.CreateCustomerRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	saveCustomer(c, "[customers.replace]", id, map[string]any{
		"full_name":         strings.TrimSpace(req.FullName),
		"email":             strings.ToLower(strings.TrimSpace(req.Email)),
		"phone":             strings.TrimSpace(req.Phone),
		"location":          strings.TrimSpace(req.Location),
		"segment":           req.Segment,
		"is_active":         req.IsActive == nil || *req.IsActive,
		"is_email_verified": req.IsEmailVerified,
	})
}

// UpdateCustomer godoc
// @Summary Update a customer
// @Description Only the provided fields change. segment "none" clears the segment
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param customer body models.UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Router /api/users/{id} [patch]
func UpdateCustomer(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "customer")
	if !ok {
		return
	}
	var req models.UpdateCustomerRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	updates := map[string]any{}
	if req.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		updates["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Location != nil {
		updates["location"] = strings.TrimSpace(*req.Location)
	}
	if req.Segment != nil {
		segment := *req.Segment
		if segment == "none" {
			segment = ""
		}
		updates["segment"] = segment
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsEmailVerified != nil {
		updates["is_email_verified"] = *req.IsEmailVerified
	}

	saveCustomer(c, "[customers.update]", id, updates)
}

func saveCustomer(c *gin.Context, tag string, id uuid.UUID, updates map[string]any) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var user models.User
	if err := config.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, tag, err, "Customer")
		return
	}
	if len(updates) > 0 {
		if err := config.DB.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
			if utils.IsUniqueViolation(err) {
				c.JSON(http.StatusConflict, models.ErrorResponse(c, "A customer with this email already exists"))
				return
			}
			utils.RespondDBError(c, tag, err, "Customer")
			return
		}
	}
	if err := config.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, tag, err, "Customer")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer updated successfully", user))
}
