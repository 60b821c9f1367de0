package cms_routes

import (
	"github.com/BadarHossain1/maplenest-admin-api/controllers/cms/category_controller"
	"github.com/BadarHossain1/maplenest-admin-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	category := rg.Group("/categories")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	category.GET("", category_controller.GetCategories)
	category.GET("/:id", category_controller.GetCategoryByID)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := category.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", category_controller.CreateCategory)
		protected.PUT("/:id", category_controller.ReplaceCategory)
		protected.PATCH("/:id", category_controller.UpdateCategory)
		protected.PATCH("/:id/status", category_controller.UpdateCategoryStatus)
		protected.DELETE("/:id", category_controller.DeleteCategory)
	}
}
