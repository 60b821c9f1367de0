package cms_routes

import (
	"github.com/BadarHossain1/maplenest-admin-api/controllers/cms/product_controller"
	"github.com/BadarHossain1/maplenest-admin-api/controllers/cms/review_controller"
	"github.com/BadarHossain1/maplenest-admin-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	product.GET("", product_controller.GetProducts)
	product.GET("/stats", product_controller.GetProductStats)
	product.GET("/:id", product_controller.GetProductByID)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := product.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", product_controller.CreateProduct)
		protected.PUT("/:id", product_controller.ReplaceProduct)
		protected.PATCH("/:id", product_controller.UpdateProduct)
		protected.DELETE("/:id", product_controller.DeleteProduct)
	}
}

func SetupReviewRoutes(rg *gin.RouterGroup) {
	review := rg.Group("/reviews")

	review.GET("", review_controller.GetReviews)
	review.GET("/:id", review_controller.GetReviewByID)

	protected := review.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", review_controller.CreateReview)
		protected.PUT("/:id", review_controller.ReplaceReview)
		protected.PATCH("/:id", review_controller.UpdateReview)
		protected.PATCH("/:id/status", review_controller.UpdateReviewStatus)
		protected.DELETE("/:id", review_controller.DeleteReview)
	}
}
