package support_ticket_controller

import (
	"net/http"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const ticketNumberAttempts = 3

// CreateTicket godoc
// @Summary Open a support ticket
// @Description Public. A ticket number is assigned and priority defaults to medium
// @Tags Support Tickets
// @Accept json
// @Produce json
// @Param ticket body models.SupportTicketRequest true "Ticket"
// @Success 201 {object} models.ApiResponse
// @Router /api/support-tickets [post]
func CreateTicket(c *gin.Context) {
	var req models.SupportTicketRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ticket := models.SupportTicket{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Subject:  strings.TrimSpace(req.Subject),
		Message:  strings.TrimSpace(req.Message),
		OrderID:  strings.TrimSpace(req.OrderID),
		Status:   models.InquiryStatusOpen,
		Priority: req.Priority,
		Replies:  []models.Reply{},
	}
	if ticket.Priority == "" {
		ticket.Priority = models.PriorityMedium
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	for attempt := 1; ; attempt++ {
		number, err := services.NewTicketNumber()
		if err != nil {
			logger.L().Error("[tickets.create] ticket number", zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create ticket"))
			return
		}
		ticket.TicketNumber = number

		err = config.DB.WithContext(ctx).Create(&ticket).Error
		if err == nil {
			break
		}
		if utils.IsUniqueViolation(err) && attempt < ticketNumberAttempts {
			ticket.ID = uuid.Nil
			continue
		}
		logger.L().Error("[tickets.create] insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create ticket"))
		return
	}
	services.SetCreatedResource(c, ticket.ID)

	logger.L().Info("[tickets.create] opened", zap.String("ticketNumber", ticket.TicketNumber), zap.String("priority", ticket.Priority))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Ticket created", ticket))
}
