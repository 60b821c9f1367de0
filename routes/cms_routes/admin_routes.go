package cms_routes

import (
	"github.com/BadarHossain1/maplenest-admin-api/controllers/cms/admin_controller"
	"github.com/BadarHossain1/maplenest-admin-api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers login and the current-admin endpoints. The
// activity log is visible to super admins only.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/login", admin_controller.AdminLogin)

	protected := auth.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.POST("/logout", admin_controller.AdminLogout)
		protected.GET("/me", admin_controller.GetAdminMe)
	}

	logs := rg.Group("/activity-logs")
	logs.Use(middleware.AdminAuthMiddleware(), middleware.RequireSuperAdminMiddleware())
	logs.GET("", admin_controller.GetActivityLogs)
}

// SetupRoutes mounts every dashboard resource under rg.
func SetupRoutes(rg *gin.RouterGroup) {
	SetupAdminRoutes(rg)
	SetupCategoryRoutes(rg)
	SetupProductRoutes(rg)
	SetupReviewRoutes(rg)
	SetupOrderRoutes(rg)
	SetupCustomerRoutes(rg)
	SetupDiscountRoutes(rg)
	SetupCampaignRoutes(rg)
	SetupContactRoutes(rg)
	SetupSupportTicketRoutes(rg)
	SetupAnalyticsRoutes(rg)
	SetupFinancialRoutes(rg)
}
