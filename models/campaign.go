package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Campaign statuses
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

type CampaignMessage struct {
	Subject string `json:"subject" binding:"omitempty,max=200"`
	Body    string `json:"body" binding:"omitempty,max=10000"`
}

type CampaignDiscount struct {
	Code       string  `json:"code" binding:"omitempty,max=32"`
	Percentage float64 `json:"percentage" binding:"min=0,max=100"`
	Amount     float64 `json:"amount" binding:"min=0"`
}

// Campaign is a marketing campaign aimed at a customer audience.
type Campaign struct {
	ID             uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string           `json:"name" gorm:"not null"`
	Type           string           `json:"type" gorm:"not null;index"`
	TargetAudience string           `json:"targetAudience" gorm:"not null"`
	Budget         float64          `json:"budget" gorm:"not null;default:0"`
	StartDate      time.Time        `json:"startDate" gorm:"not null"`
	EndDate        time.Time        `json:"endDate" gorm:"not null"`
	Message        CampaignMessage  `json:"message" gorm:"embedded;embeddedPrefix:message_"`
	Discount       CampaignDiscount `json:"discount" gorm:"embedded;embeddedPrefix:discount_"`
	Status         string           `json:"status" gorm:"not null;index"`
	CreatedAt      time.Time        `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time        `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (cp *Campaign) BeforeCreate(tx *gorm.DB) error {
	if cp.ID == uuid.Nil {
		cp.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Campaign) TableName() string {
	return "campaigns"
}

type CampaignRequest struct {
	Name           string           `json:"name" binding:"required,min=2,max=200"`
	Type           string           `json:"type" binding:"required,oneof=email sms push social banner"`
	TargetAudience string           `json:"targetAudience" binding:"required,oneof=all vip loyal new-buyer seasonal-shopper"`
	Budget         float64          `json:"budget" binding:"min=0"`
	StartDate      time.Time        `json:"startDate" binding:"required"`
	EndDate        time.Time        `json:"endDate" binding:"required"`
	Message        CampaignMessage  `json:"message"`
	Discount       CampaignDiscount `json:"discount"`
	Status         string           `json:"status" binding:"omitempty,oneof=draft scheduled active paused completed cancelled"`
}

type UpdateCampaignRequest struct {
	Name           *string           `json:"name" binding:"omitempty,min=2,max=200"`
	Type           *string           `json:"type" binding:"omitempty,oneof=email sms push social banner"`
	TargetAudience *string           `json:"targetAudience" binding:"omitempty,oneof=all vip loyal new-buyer seasonal-shopper"`
	Budget         *float64          `json:"budget" binding:"omitempty,min=0"`
	StartDate      *time.Time        `json:"startDate"`
	EndDate        *time.Time        `json:"endDate"`
	Message        *CampaignMessage  `json:"message"`
	Discount       *CampaignDiscount `json:"discount"`
}

type UpdateCampaignStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft scheduled active paused completed cancelled"`
}

type CampaignAudience struct {
	CampaignID     uuid.UUID `json:"campaignId"`
	TargetAudience string    `json:"targetAudience"`
	Recipients     int       `json:"recipients"`
}
