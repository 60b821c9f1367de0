package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Discount is a redeemable discount code.
type Discount struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Code              string    `json:"code" gorm:"not null;uniqueIndex"`
	Description       string    `json:"description"`
	Type              string    `json:"type" gorm:"not null"`
	Value             float64   `json:"value" gorm:"not null"`
	MinOrderAmount    float64   `json:"minOrderAmount" gorm:"not null;default:0"`
	MaxDiscountAmount float64   `json:"maxDiscountAmount" gorm:"not null;default:0"`
	UsageLimit        int       `json:"usageLimit" gorm:"not null;default:0"`
	UsedCount         int       `json:"usedCount" gorm:"not null;default:0"`
	ValidFrom         time.Time `json:"validFrom" gorm:"not null"`
	ValidUntil        time.Time `json:"validUntil" gorm:"not null;index"`
	IsActive          bool      `json:"isActive" gorm:"not null;index"`
	CreatedAt         time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt         time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (d *Discount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Discount) TableName() string {
	return "discounts"
}

type DiscountRequest struct {
	Code              string    `json:"code" binding:"required,min=3,max=32"`
	Description       string    `json:"description" binding:"omitempty,max=500"`
	Type              string    `json:"type" binding:"required,oneof=percentage fixed"`
	Value             float64   `json:"value" binding:"required,gt=0"`
	MinOrderAmount    float64   `json:"minOrderAmount" binding:"min=0"`
	MaxDiscountAmount float64   `json:"maxDiscountAmount" binding:"min=0"`
	UsageLimit        int       `json:"usageLimit" binding:"min=0"`
	ValidFrom         time.Time `json:"validFrom" binding:"required"`
	ValidUntil        time.Time `json:"validUntil" binding:"required"`
	IsActive          *bool     `json:"isActive"`
}

type UpdateDiscountRequest struct {
	Code              *string    `json:"code" binding:"omitempty,min=3,max=32"`
	Description       *string    `json:"description" binding:"omitempty,max=500"`
	Type              *string    `json:"type" binding:"omitempty,oneof=percentage fixed"`
	Value             *float64   `json:"value" binding:"omitempty,gt=0"`
	MinOrderAmount    *float64   `json:"minOrderAmount" binding:"omitempty,min=0"`
	MaxDiscountAmount *float64   `json:"maxDiscountAmount" binding:"omitempty,min=0"`
	UsageLimit        *int       `json:"usageLimit" binding:"omitempty,min=0"`
	ValidFrom         *time.Time `json:"validFrom"`
	ValidUntil        *time.Time `json:"validUntil"`
	IsActive          *bool      `json:"isActive"`
}

type ValidateDiscountRequest struct {
	Code        string  `json:"code" binding:"required"`
	OrderAmount float64 `json:"orderAmount" binding:"min=0"`
}

// DiscountQuote is the outcome of checking a code against an order amount.
type DiscountQuote struct {
	Code           string  `json:"code"`
	Valid          bool    `json:"valid"`
	Reason         string  `json:"reason,omitempty"`
	OrderAmount    float64 `json:"orderAmount"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalAmount    float64 `json:"finalAmount"`
}
