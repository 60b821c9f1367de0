package campaign_controller

import (
	"net/http"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UpdateCampaign godoc
// @Summary Update a campaign
// @Description Only the provided fields change. Completed and cancelled campaigns are read-only
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Param campaign body models.UpdateCampaignRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Campaign has ended"
// @Router /api/campaigns/{id} [patch]
func UpdateCampaign(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "campaign")
	if !ok {
		return
	}
	var req models.UpdateCampaignRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var campaign models.Campaign
	if err := config.DB.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[campaigns.update]", err, "Campaign")
		return
	}
	if terminal(campaign.Status) {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Campaign is "+campaign.Status+" and can no longer be edited"))
		return
	}

	if req.Name != nil {
		campaign.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		campaign.Type = *req.Type
	}
	if req.TargetAudience != nil {
		campaign.TargetAudience = *req.TargetAudience
	}
	if req.Budget != nil {
		campaign.Budget = *req.Budget
	}
	if req.StartDate != nil {
		campaign.StartDate = req.StartDate.UTC()
	}
	if req.EndDate != nil {
		campaign.EndDate = req.EndDate.UTC()
	}
	if req.Message != nil {
		campaign.Message = *req.Message
	}
	if req.Discount != nil {
		campaign.Discount = *req.Discount
		campaign.Discount.Code, _ = services.NormalizeDiscountCode(campaign.Discount.Code)
	}
	if fields := dateFields(campaign.StartDate, campaign.EndDate); fields != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request body", fields))
		return
	}

	if err := config.DB.WithContext(ctx).Save(&campaign).Error; err != nil {
		utils.RespondDBError(c, "[campaigns.update]", err, "Campaign")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign updated successfully", campaign))
}

// ReplaceCampaign godoc
// @Summary Replace a campaign
// @Description Overwrites every editable field; omitted message and discount are cleared
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Param campaign body models.CampaignRequest true "Campaign"
// @Success 200 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Campaign has ended"
// @Router /api/campaigns/{id} [put]
func ReplaceCampaign(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "campaign")
	if !ok {
		return
	}
	var req models.CampaignRequest
	if !utils.BindJSON(c, &req) {
		return
	}
	if fields := dateFields(req.StartDate, req.EndDate); fields != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request body", fields))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var campaign models.Campaign
	if err := config.DB.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[campaigns.replace]", err, "Campaign")
		return
	}
	if terminal(campaign.Status) {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Campaign is "+campaign.Status+" and can no longer be edited"))
		return
	}

	campaign.Name = strings.TrimSpace(req.Name)
	campaign.Type = req.Type
	campaign.TargetAudience = req.TargetAudience
	campaign.Budget = req.Budget
	campaign.StartDate = req.StartDate.UTC()
	campaign.EndDate = req.EndDate.UTC()
	campaign.Message = req.Message
	campaign.Discount = req.Discount
	if campaign.Discount.Code != "" {
		campaign.Discount.Code, _ = services.NormalizeDiscountCode(campaign.Discount.Code)
	}
	// status has its own endpoint so its transition rules apply
	if err := config.DB.WithContext(ctx).Save(&campaign).Error; err != nil {
		utils.RespondDBError(c, "[campaigns.replace]", err, "Campaign")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign updated successfully", campaign))
}

// UpdateCampaignStatus godoc
// @Summary Change a campaign's status
// @Description Completed and cancelled are final
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Param status body models.UpdateCampaignStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/campaigns/{id}/status [patch]
func UpdateCampaignStatus(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "campaign")
	if !ok {
		return
	}
	var req models.UpdateCampaignStatusRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var campaign models.Campaign
	if err := config.DB.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[campaigns.status]", err, "Campaign")
		return
	}
	if campaign.Status != req.Status && terminal(campaign.Status) {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Cannot change status of a "+campaign.Status+" campaign"))
		return
	}

	previous := campaign.Status
	if err := config.DB.WithContext(ctx).Model(&campaign).Update("status", req.Status).Error; err != nil {
		utils.RespondDBError(c, "[campaigns.status]", err, "Campaign")
		return
	}
	campaign.Status = req.Status

	logger.L().Info("[campaigns.status] changed",
		zap.String("id", id.String()),
		zap.String("from", previous),
		zap.String("to", req.Status),
	)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign status updated successfully", campaign))
}

// DeleteCampaign godoc
// @Summary Delete a campaign
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/campaigns/{id} [delete]
func DeleteCampaign(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "campaign")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	res := config.DB.WithContext(ctx).Delete(&models.Campaign{}, "id = ?", id)
	if res.Error != nil {
		utils.RespondDBError(c, "[campaigns.delete]", res.Error, "Campaign")
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Campaign not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign deleted successfully", gin.H{"id": id}))
}
