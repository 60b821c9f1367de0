package campaign_controller

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

// GetCampaigns godoc
// @Summary List campaigns
// @Description Filters: status, type, targetAudience, search (name, message subject)
// @Tags Campaigns
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Campaign status"
// @Param type query string false "Campaign type"
// @Param targetAudience query string false "Audience"
// @Param search query string false "Search term"
// @Success 200 {object} models.ApiResponse
// @Router /api/campaigns [get]
func GetCampaigns(c *gin.Context) {
	page := utils.ParsePage(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.Campaign{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}
	if audience := c.Query("targetAudience"); audience != "" {
		query = query.Where("target_audience = ?", audience)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := utils.LikePattern(search)
		query = query.Where("LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(message_subject) LIKE ? ESCAPE '\\'", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.L().Error("[campaigns.list] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch campaigns"))
		return
	}

	campaigns := []models.Campaign{}
	if err := query.
		Order("start_date DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&campaigns).Error; err != nil {
		logger.L().Error("[campaigns.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch campaigns"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Campaigns fetched successfully", campaigns, page.Meta(total)))
}

// GetCampaignByID godoc
// @Summary Get a campaign
// @Tags Campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/campaigns/{id} [get]
func GetCampaignByID(c *gin.Context) {
	id, ok := utils.ParamUUID(c, "id", "campaign")
	if !ok {
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var campaign models.Campaign
	if err := config.DB.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		utils.RespondDBError(c, "[campaigns.get]", err, "Campaign")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign fetched successfully", campaign))
}
