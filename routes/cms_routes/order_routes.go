package cms_routes

import (
	"github.com/BadarHossain1/maplenest-admin-api/controllers/cms/order_controller"
	"github.com/BadarHossain1/maplenest-admin-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	order.GET("", order_controller.GetOrders)
	order.GET("/stats", order_controller.GetOrderStats)
	order.GET("/:id", order_controller.GetOrderByID)
	order.GET("/:id/invoice", order_controller.DownloadOrderInvoice)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := order.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", order_controller.CreateOrder)
		protected.PUT("/:id", order_controller.ReplaceOrder)
		protected.PATCH("/:id", order_controller.UpdateOrder)
		protected.PATCH("/:id/status", order_controller.UpdateOrderStatus)
		protected.DELETE("/:id", order_controller.DeleteOrder)
	}
}
