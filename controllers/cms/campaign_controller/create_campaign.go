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

// CreateCampaign godoc
// @Summary Create a campaign
// @Description Status defaults to draft; endDate must not precede startDate
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campaign body models.CampaignRequest true "Campaign"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/campaigns [post]
func CreateCampaign(c *gin.Context) {
	var req models.CampaignRequest
	if !utils.BindJSON(c, &req) {
		return
	}
	if fields := dateFields(req.StartDate, req.EndDate); fields != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request body", fields))
		return
	}

	campaign := models.Campaign{
		Name:           strings.TrimSpace(req.Name),
		Type:           req.Type,
		TargetAudience: req.TargetAudience,
		Budget:         req.Budget,
		StartDate:      req.StartDate.UTC(),
		EndDate:        req.EndDate.UTC(),
		Message:        req.Message,
		Discount:       req.Discount,
		Status:         req.Status,
	}
	if campaign.Status == "" {
		campaign.Status = models.CampaignStatusDraft
	}
	if campaign.Discount.Code != "" {
		campaign.Discount.Code, _ = services.NormalizeDiscountCode(campaign.Discount.Code)
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&campaign).Error; err != nil {
		logger.L().Error("[campaigns.create] insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create campaign"))
		return
	}
	services.SetCreatedResource(c, campaign.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Campaign created successfully", campaign))
}
