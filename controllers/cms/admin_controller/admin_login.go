package admin_controller

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
	"go.uber.org/zap"
)

const tokenCookie = "admin_token"

// AdminLogin godoc
// @Summary Login as admin
// @Description Verifies email and password, returns a JWT and sets it as the admin_token cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Failure 403 {object} models.ApiResponse "Account suspended"
// @Router /api/auth/login [post]
func AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if !utils.BindJSON(c, &req) {
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var admin models.Admin
	if err := config.DB.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		if utils.IsNotFound(err) {
			logger.L().Info("[auth.login] unknown email", zap.String("email", email))
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		utils.RespondDBError(c, "[auth.login]", err, "Admin")
		return
	}

	if !services.VerifyAdminPassword(admin.PasswordHash, req.Password) {
		logger.L().Info("[auth.login] wrong password", zap.String("email", email))
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}
	if admin.Status != models.AdminStatusActive {
		logger.L().Warn("[auth.login] suspended account", zap.String("email", email))
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is suspended"))
		return
	}

	token, err := services.GenerateAdminJWT(admin.ID.String(), admin.Email)
	if err != nil {
		logger.L().Error("[auth.login] token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	now := time.Now().UTC()
	if err := config.DB.WithContext(ctx).Model(&admin).Update("last_login_at", now).Error; err != nil {
		utils.RespondDBError(c, "[auth.login]", err, "Admin")
		return
	}
	admin.LastLoginAt = &now

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, token, int(services.TokenTTL.Seconds()), "/", "", gin.Mode() == gin.ReleaseMode, true)

	logger.L().Info("[auth.login] success", zap.String("adminId", admin.ID.String()))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AdminLoginResponse{
		Admin: admin.ToResponse(),
		Token: token,
	}))
}

// AdminLogout godoc
// @Summary Logout admin
// @Description Clears the admin_token cookie. Bearer tokens stay valid until they expire
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/auth/logout [post]
func AdminLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, "", -1, "/", "", gin.Mode() == gin.ReleaseMode, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}

// GetAdminMe godoc
// @Summary Current admin
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Router /api/auth/me [get]
func GetAdminMe(c *gin.Context) {
	adminID, ok := c.Get("adminID")
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var admin models.Admin
	if err := config.DB.WithContext(ctx).First(&admin, "id = ?", adminID).Error; err != nil {
		utils.RespondDBError(c, "[auth.me]", err, "Admin")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin fetched successfully", admin.ToResponse()))
}
