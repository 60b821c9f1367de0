package campaign_controller

import (
	"net/http"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
)

const audienceAll = "all"

// GetCampaignAudience godoc
// @Summary Size of a campaign's audience
// @Description Active customers in the target segment, or every active customer for "all"
// @Tags Campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.ApiResponse{data=models.CampaignAudience}
// @Router /api/campaigns/{id}/audience [get]
func GetCampaignAudience(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "campaign")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var campaign models.Campaign
	if err := config.DB.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[campaigns.audience]", err, "Campaign")
		return
	}

	query := config.DB.WithContext(ctx).Model(&models.User{}).Where("is_active = ?", true)
	if campaign.TargetAudience != audienceAll {
		query = query.Where("segment = ?", campaign.TargetAudience)
	}
	var recipients int64
	if err := query.Count(&recipients).Error; err != nil {
		utils.RespondDBError(c, "[campaigns.audience]", err, "Customer")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign audience fetched successfully", models.CampaignAudience{
		CampaignID:     campaign.ID,
		TargetAudience: campaign.TargetAudience,
		Recipients:     int(recipients),
	}))
}
