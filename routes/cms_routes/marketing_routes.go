package cms_routes

import (
	"github.com/BadarHossain1/maplenest-admin-api/controllers/cms/campaign_controller"
	"github.com/BadarHossain1/maplenest-admin-api/controllers/cms/discount_controller"
	"github.com/BadarHossain1/maplenest-admin-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupDiscountRoutes(rg *gin.RouterGroup) {
	discount := rg.Group("/discounts")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	discount.GET("", discount_controller.GetDiscounts)
	discount.GET("/:id", discount_controller.GetDiscountByID)
	discount.POST("/validate", discount_controller.ValidateDiscount)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := discount.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", discount_controller.CreateDiscount)
		protected.PUT("/:id", discount_controller.ReplaceDiscount)
		protected.PATCH("/:id", discount_controller.UpdateDiscount)
		protected.POST("/:id/redeem", discount_controller.RedeemDiscount)
		protected.DELETE("/:id", discount_controller.DeleteDiscount)
	}
}

func SetupCampaignRoutes(rg *gin.RouterGroup) {
	campaign := rg.Group("/campaigns")

	campaign.GET("", campaign_controller.GetCampaigns)
	campaign.GET("/:id", campaign_controller.GetCampaignByID)
	campaign.GET("/:id/audience", campaign_controller.GetCampaignAudience)

	protected := campaign.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", campaign_controller.CreateCampaign)
		protected.PUT("/:id", campaign_controller.ReplaceCampaign)
		protected.PATCH("/:id", campaign_controller.UpdateCampaign)
		protected.PATCH("/:id/status", campaign_controller.UpdateCampaignStatus)
		protected.DELETE("/:id", campaign_controller.DeleteCampaign)
	}
}
