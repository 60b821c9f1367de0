package support_ticket_controller

import (
	"net/http"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetTickets godoc
// @Summary List support tickets
// @Tags Support Tickets
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "open, in-progress, resolved or closed"
// @Param priority query string false "low, medium, high or urgent"
// @Param search query string false "Ticket number, name, email or subject"
// @Success 200 {object} models.ApiResponse
// @Router /api/support-tickets [get]
func GetTickets(c *gin.Context) {
	page := utils.ParsePage(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.SupportTicket{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		query = query.Where("priority = ?", priority)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := utils.LikePattern(search)
		query = query.Where(
			"LOWER(ticket_number) LIKE ? ESCAPE '\\' OR LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\' OR LOWER(subject) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.L().Error("[tickets.list] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch tickets"))
		return
	}
	tickets := []models.SupportTicket{}
	if err := query.Order("created_at DESC").Limit(page.Limit).Offset(page.Offset).Find(&tickets).Error; err != nil {
		logger.L().Error("[tickets.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch tickets"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Tickets fetched successfully", tickets, page.Meta(total)))
}

// GetTicketByID godoc
// @Summary Get a support ticket
// @Tags Support Tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/support-tickets/{id} [get]
func GetTicketByID(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "ticket")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var ticket models.SupportTicket
	if err := config.DB.WithContext(ctx).First(&ticket, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[tickets.get]", err, "Ticket")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Ticket fetched successfully", ticket))
}
