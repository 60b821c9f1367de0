package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Ticket priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// SupportTicket is a customer support request.
type SupportTicket struct {
	ID           uuid.UUID                  `json:"id" gorm:"type:uuid;primaryKey"`
	TicketNumber string                     `json:"ticketNumber" gorm:"not null;uniqueIndex"`
	Name         string                     `json:"name" gorm:"not null"`
	Email        string                     `json:"email" gorm:"not null;index"`
	Subject      string                     `json:"subject" gorm:"not null"`
	Message      string                     `json:"message" gorm:"not null"`
	OrderID      string                     `json:"orderId"`
	Status       string                     `json:"status" gorm:"not null;index"`
	Priority     string                     `json:"priority" gorm:"not null;index"`
	Replies      datatypes.JSONSlice[Reply] `json:"replies"`
	CreatedAt    time.Time                  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time                  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (t *SupportTicket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	if t.Status == "" {
		t.Status = InquiryStatusOpen
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	return nil
}

func (t *SupportTicket) AfterFind(tx *gorm.DB) error {
	if t.Replies == nil {
		t.Replies = datatypes.JSONSlice[Reply]{}
	}
	return nil
}

// TableName specifies the table name
func (SupportTicket) TableName() string {
	return "support_tickets"
}

type SupportTicketRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Subject  string `json:"subject" binding:"required,min=3,max=200"`
	Message  string `json:"message" binding:"required,min=5,max=5000"`
	OrderID  string `json:"orderId" binding:"omitempty,max=40"`
	Priority string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

type ReplaceTicketRequest struct {
	Status   string `json:"status" binding:"required,oneof=open in-progress resolved closed"`
	Priority string `json:"priority" binding:"required,oneof=low medium high urgent"`
	Subject  string `json:"subject" binding:"required,min=3,max=200"`
}
