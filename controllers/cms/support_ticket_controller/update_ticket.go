package support_ticket_controller

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

// UpdateTicket godoc
// @Summary Update a ticket's status, priority or subject
// @Tags Support Tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param body body models.UpdateInquiryRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Router /api/support-tickets/{id} [patch]
func UpdateTicket(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "ticket")
	if !ok {
		return
	}
	var req models.UpdateInquiryRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var ticket models.SupportTicket
	if err := config.DB.WithContext(ctx).First(&ticket, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[tickets.update]", err, "Ticket")
		return
	}
	if req.Status != nil {
		ticket.Status = *req.Status
	}
	if req.Priority != nil {
		ticket.Priority = *req.Priority
	}
	if req.Subject != nil {
		ticket.Subject = strings.TrimSpace(*req.Subject)
	}
	if err := config.DB.WithContext(ctx).Save(&ticket).Error; err != nil {
		utils.RespondDBError(c, "[tickets.update]", err, "Ticket")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Ticket updated successfully", ticket))
}

// ReplaceTicket godoc
// @Summary Replace a ticket's status, priority and subject
// @Description The customer's message, order reference and replies are kept
// @Tags Support Tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param body body models.ReplaceTicketRequest true "Admin fields"
// @Success 200 {object} models.ApiResponse
// @Router /api/support-tickets/{id} [put]
func ReplaceTicket(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "ticket")
	if !ok {
		return
	}
	var req models.ReplaceTicketRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var ticket models.SupportTicket
	if err := config.DB.WithContext(ctx).First(&ticket, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[tickets.replace]", err, "Ticket")
		return
	}
	ticket.Status = req.Status
	ticket.Priority = req.Priority
	ticket.Subject = strings.TrimSpace(req.Subject)
	if err := config.DB.WithContext(ctx).Save(&ticket).Error; err != nil {
		utils.RespondDBError(c, "[tickets.replace]", err, "Ticket")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Ticket updated successfully", ticket))
}

// ReplyToTicket godoc
// @Summary Reply to a ticket
// @Description Appends the reply and moves an open ticket to in-progress
// @Tags Support Tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param reply body models.ReplyRequest true "Reply"
// @Success 201 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Ticket is closed"
// @Router /api/support-tickets/{id}/replies [post]
func ReplyToTicket(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "ticket")
	if !ok {
		return
	}
	var req models.ReplyRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var ticket models.SupportTicket
	if err := config.DB.WithContext(ctx).First(&ticket, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[tickets.reply]", err, "Ticket")
		return
	}

	status, err := services.ReplyStatus(ticket.Status)
	if err != nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Cannot reply to a closed ticket"))
		return
	}
	ticket.Status = status
	ticket.Replies = append(ticket.Replies, models.Reply{
		Message:   strings.TrimSpace(req.Message),
		Author:    c.GetString("adminEmail"),
		CreatedAt: time.Now().UTC(),
	})

	if err := config.DB.WithContext(ctx).Save(&ticket).Error; err != nil {
		utils.RespondDBError(c, "[tickets.reply]", err, "Ticket")
		return
	}

	logger.L().Info("[tickets.reply] replied", zap.String("ticketNumber", ticket.TicketNumber), zap.Int("replies", len(ticket.Replies)))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Reply added", ticket))
}

// DeleteTicket godoc
// @Summary Delete a ticket
// @Tags Support Tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/support-tickets/{id} [delete]
func DeleteTicket(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "ticket")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	res := config.DB.WithContext(ctx).Delete(&models.SupportTicket{}, "id = ?", id)
	if res.Error != nil {
		utils.RespondDBError(c, "[tickets.delete]", res.Error, "Ticket")
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Ticket not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Ticket deleted successfully", gin.H{"id": id}))
}
