package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resource types recorded in the activity log
const (
	ResourceTypeCategory      = "category"
	ResourceTypeProduct       = "product"
	ResourceTypeOrder         = "order"
	ResourceTypeCustomer      = "customer"
	ResourceTypeDiscount      = "discount"
	ResourceTypeCampaign      = "campaign"
	ResourceTypeContact       = "contact"
	ResourceTypeSupportTicket = "support_ticket"
	ResourceTypeReview        = "review"
)

// ActivityLog represents an admin action log entry
type ActivityLog struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID      uuid.UUID `json:"adminId" gorm:"type:uuid;not null;index"`
	AdminEmail   string    `json:"adminEmail" gorm:"not null;index"`
	Action       string    `json:"action" gorm:"not null;index"` // created_product, updated_order, deleted_category, etc.
	ResourceType string    `json:"resourceType" gorm:"not null;index"`
	ResourceID   string    `json:"resourceId" gorm:"index"`
	Method       string    `json:"method"`
	Path         string    `json:"path"`
	StatusCode   int       `json:"statusCode"`
	IPAddress    string    `json:"ipAddress"`
	UserAgent    string    `json:"userAgent"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (ActivityLog) TableName() string {
	return "activity_logs"
}
