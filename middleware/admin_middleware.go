package middleware

import (
	"net/http"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuthMiddleware validates the admin JWT from the Authorization header
// or the admin_token cookie, and loads the admin's role.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			if cookie, err := c.Cookie("admin_token"); err == nil {
				token = cookie
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
			return
		}

		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			logger.L().Debug("[auth] invalid token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			return
		}

		ctx, cancel := config.WithRequestTimeout(c.Request.Context())
		defer cancel()

		var admin models.Admin
		if err := config.DB.WithContext(ctx).
			Select("id", "role", "status").
			Where("id = ?", claims.AdminID).
			First(&admin).Error; err != nil {
			logger.L().Warn("[auth] admin lookup failed", zap.String("adminId", claims.AdminID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - admin not found"))
			return
		}
		if admin.Status != models.AdminStatusActive {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - account suspended"))
			return
		}

		c.Set("adminID", admin.ID)
		c.Set("adminEmail", claims.Email)
		c.Set("adminRole", admin.Role)
		c.Next()
	}
}

// RequireSuperAdminMiddleware must run after AdminAuthMiddleware.
func RequireSuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("adminRole") != models.AdminRoleSuperAdmin {
			logger.L().Info("[auth] non-super-admin attempted restricted action", zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - super admin access required"))
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
