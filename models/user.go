package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer segments
const (
	SegmentVIP             = "vip"
	SegmentLoyal           = "loyal"
	SegmentNewBuyer        = "new-buyer"
	SegmentSeasonalShopper = "seasonal-shopper"
)

// Segments lists the known customer segments in display order.
var Segments = []string{SegmentVIP, SegmentLoyal, SegmentNewBuyer, SegmentSeasonalShopper}

// User is a storefront customer as managed from the dashboard.
type User struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FullName        string    `json:"fullName" gorm:"not null"`
	Email           string    `json:"email" gorm:"not null;uniqueIndex"`
	Phone           string    `json:"phone"`
	Location        string    `json:"location"`
	Segment         string    `json:"segment" gorm:"index"`
	IsActive        bool      `json:"isActive" gorm:"not null;index"`
	IsEmailVerified bool      `json:"isEmailVerified" gorm:"not null"`
	CreatedAt       time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}
