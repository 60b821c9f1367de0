package campaign_controller

import (
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/models"
)

func terminal(status string) bool {
	return status == models.CampaignStatusCompleted || status == models.CampaignStatusCancelled
}

func dateFields(start, end time.Time) map[string]string {
	if end.Before(start) {
		return map[string]string{"endDate": "Must be on or after startDate"}
	}
	return nil
}
