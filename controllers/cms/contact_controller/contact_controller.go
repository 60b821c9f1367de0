package contact_controller

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

// SubmitContact godoc
// @Summary Submit the storefront contact form
// @Description Public. New messages start open
// @Tags Contacts
// @Accept json
// @Produce json
// @Param contact body models.ContactRequest true "Message"
// @Success 201 {object} models.ApiResponse
// @Router /api/contacts [post]
func SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	contact := models.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
		Status:  models.InquiryStatusOpen,
		Replies: []models.Reply{},
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&contact).Error; err != nil {
		logger.L().Error("[contacts.create] insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to submit message"))
		return
	}
	services.SetCreatedResource(c, contact.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Message received", contact))
}

// GetContacts godoc
// @Summary List contact messages
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "open, in-progress, resolved or closed"
// @Param search query string false "Name, email, subject or message"
// @Success 200 {object} models.ApiResponse
// @Router /api/contacts [get]
func GetContacts(c *gin.Context) {
	page := utils.ParsePage(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.Contact{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := utils.LikePattern(search)
		query = query.Where(
			"LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\' OR LOWER(subject) LIKE ? ESCAPE '\\' OR LOWER(message) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.L().Error("[contacts.list] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch messages"))
		return
	}
	contacts := []models.Contact{}
	if err := query.Order("created_at DESC").Limit(page.Limit).Offset(page.Offset).Find(&contacts).Error; err != nil {
		logger.L().Error("[contacts.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch messages"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Messages fetched successfully", contacts, page.Meta(total)))
}

// GetContactByID godoc
// @Summary Get a contact message
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/contacts/{id} [get]
func GetContactByID(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "contact")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var contact models.Contact
	if err := config.DB.WithContext(ctx).First(&contact, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[contacts.get]", err, "Message")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Message fetched successfully", contact))
}

// UpdateContact godoc
// @Summary Update a contact message's status or subject
// @Tags Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param body body models.UpdateInquiryRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Router /api/contacts/{id} [patch]
func UpdateContact(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "contact")
	if !ok {
		return
	}
	var req models.UpdateInquiryRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var contact models.Contact
	if err := config.DB.WithContext(ctx).First(&contact, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[contacts.update]", err, "Message")
		return
	}
	if req.Status != nil {
		contact.Status = *req.Status
	}
	if req.Subject != nil {
		contact.Subject = strings.TrimSpace(*req.Subject)
	}
	if err := config.DB.WithContext(ctx).Save(&contact).Error; err != nil {
		utils.RespondDBError(c, "[contacts.update]", err, "Message")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Message updated successfully", contact))
}

// ReplaceContact godoc
// @Summary Replace a contact message's status and subject
// @Description The sender's name, email, message and replies are kept
// @Tags Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param body body models.ReplaceContactRequest true "Admin fields"
// @Success 200 {object} models.ApiResponse
// @Router /api/contacts/{id} [put]
func ReplaceContact(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "contact")
	if !ok {
		return
	}
	var req models.ReplaceContactRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var contact models.Contact
	if err := config.DB.WithContext(ctx).First(&contact, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[contacts.replace]", err, "Message")
		return
	}
	contact.Status = req.Status
	contact.Subject = strings.TrimSpace(req.Subject)
	if err := config.DB.WithContext(ctx).Save(&contact).Error; err != nil {
		utils.RespondDBError(c, "[contacts.replace]", err, "Message")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Message updated successfully", contact))
}

// ReplyToContact godoc
// @Summary Reply to a contact message
// @Description Appends the reply and moves an open message to in-progress
// @Tags Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param reply body models.ReplyRequest true "Reply"
// @Success 201 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Message is closed"
// @Router /api/contacts/{id}/replies [post]
func ReplyToContact(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "contact")
	if !ok {
		return
	}
	var req models.ReplyRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var contact models.Contact
	if err := config.DB.WithContext(ctx).First(&contact, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[contacts.reply]", err, "Message")
		return
	}

	status, err := services.ReplyStatus(contact.Status)
	if err != nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Cannot reply to a closed message"))
		return
	}
	contact.Status = status
	contact.Replies = append(contact.Replies, models.Reply{
		Message:   strings.TrimSpace(req.Message),
		Author:    c.GetString("adminEmail"),
		CreatedAt: time.Now().UTC(),
	})

	if err := config.DB.WithContext(ctx).Save(&contact).Error; err != nil {
		utils.RespondDBError(c, "[contacts.reply]", err, "Message")
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Reply added", contact))
}

// DeleteContact godoc
// @Summary Delete a contact message
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/contacts/{id} [delete]
func DeleteContact(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "contact")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	res := config.DB.WithContext(ctx).Delete(&models.Contact{}, "id = ?", id)
	if res.Error != nil {
		utils.RespondDBError(c, "[contacts.delete]", res.Error, "Message")
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Message not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Message deleted successfully", gin.H{"id": id}))
}
