package cms_routes

import (
	"github.com/BadarHossain1/maplenest-admin-api/controllers/cms/contact_controller"
	"github.com/BadarHossain1/maplenest-admin-api/controllers/cms/support_ticket_controller"
	"github.com/BadarHossain1/maplenest-admin-api/middleware"
	"github.com/gin-gonic/gin"
)

// Submissions come from the storefront forms; everything else is admin-only.

func SetupContactRoutes(rg *gin.RouterGroup) {
	contact := rg.Group("/contacts")
	contact.POST("", contact_controller.SubmitContact)

	protected := contact.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.GET("", contact_controller.GetContacts)
		protected.GET("/:id", contact_controller.GetContactByID)
		protected.PUT("/:id", contact_controller.ReplaceContact)
		protected.PATCH("/:id", contact_controller.UpdateContact)
		protected.POST("/:id/replies", contact_controller.ReplyToContact)
		protected.DELETE("/:id", contact_controller.DeleteContact)
	}
}

func SetupSupportTicketRoutes(rg *gin.RouterGroup) {
	ticket := rg.Group("/support-tickets")
	ticket.POST("", support_ticket_controller.CreateTicket)

	protected := ticket.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.GET("", support_ticket_controller.GetTickets)
		protected.GET("/:id", support_ticket_controller.GetTicketByID)
		protected.PUT("/:id", support_ticket_controller.ReplaceTicket)
		protected.PATCH("/:id", support_ticket_controller.UpdateTicket)
		protected.POST("/:id/replies", support_ticket_controller.ReplyToTicket)
		protected.DELETE("/:id", support_ticket_controller.DeleteTicket)
	}
}
