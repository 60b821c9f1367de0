package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review moderation statuses
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// Review is a customer's rating of a product.
type Review struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `json:"productId" gorm:"type:uuid;not null;index"`
	ProductName string    `json:"productName"`
	UserName    string    `json:"userName" gorm:"not null"`
	UserEmail   string    `json:"userEmail" gorm:"index"`
	Rating      int       `json:"rating" gorm:"not null;index"`
	Title       string    `json:"title"`
	Comment     string    `json:"comment"`
	Status      string    `json:"status" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	if r.Status == "" {
		r.Status = ReviewStatusPending
	}
	return nil
}

// TableName specifies the table name
func (Review) TableName() string {
	return "reviews"
}

type ReviewRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	UserName  string    `json:"userName" binding:"required,min=2,max=120"`
	UserEmail string    `json:"userEmail" binding:"omitempty,email"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Title     string    `json:"title" binding:"omitempty,max=200"`
	Comment   string    `json:"comment" binding:"omitempty,max=5000"`
	Status    string    `json:"status" binding:"omitempty,oneof=pending approved rejected"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Title   *string `json:"title" binding:"omitempty,max=200"`
	Comment *string `json:"comment" binding:"omitempty,max=5000"`
}

type UpdateReviewStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}
