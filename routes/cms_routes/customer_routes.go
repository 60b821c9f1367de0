package cms_routes

import (
	"github.com/BadarHossain1/maplenest-admin-api/controllers/cms/customer_controller"
	"github.com/BadarHossain1/maplenest-admin-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupCustomerRoutes(rg *gin.RouterGroup) {
	customer := rg.Group("/users")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	customer.GET("", customer_controller.GetCustomers)
	customer.GET("/stats", customer_controller.GetCustomerStats)
	customer.GET("/:id", customer_controller.GetCustomerByID)
	customer.GET("/:id/orders", customer_controller.GetCustomerOrders)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := customer.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", customer_controller.CreateCustomer)
		protected.PUT("/:id", customer_controller.ReplaceCustomer)
		protected.PATCH("/:id", customer_controller.UpdateCustomer)
		protected.DELETE("/:id", customer_controller.DeleteCustomer)
	}
}
