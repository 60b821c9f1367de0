package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Inquiry statuses shared by contacts and support tickets
const (
	InquiryStatusOpen       = "open"
	InquiryStatusInProgress = "in-progress"
	InquiryStatusResolved   = "resolved"
	InquiryStatusClosed     = "closed"
)

// Reply is an answer appended to a contact message or ticket.
type Reply struct {
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// Contact is a message left through the storefront contact form.
type Contact struct {
	ID        uuid.UUID                  `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string                     `json:"name" gorm:"not null"`
	Email     string                     `json:"email" gorm:"not null;index"`
	Subject   string                     `json:"subject"`
	Message   string                     `json:"message" gorm:"not null"`
	Status    string                     `json:"status" gorm:"not null;index"`
	Replies   datatypes.JSONSlice[Reply] `json:"replies"`
	CreatedAt time.Time                  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time                  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (ct *Contact) BeforeCreate(tx *gorm.DB) error {
	if ct.ID == uuid.Nil {
		ct.ID = uuid.Must(uuid.NewV7())
	}
	if ct.Status == "" {
		ct.Status = InquiryStatusOpen
	}
	return nil
}

func (ct *Contact) AfterFind(tx *gorm.DB) error {
	if ct.Replies == nil {
		ct.Replies = datatypes.JSONSlice[Reply]{}
	}
	return nil
}

// TableName specifies the table name
func (Contact) TableName() string {
	return "contacts"
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=120"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"omitempty,max=200"`
	Message string `json:"message" binding:"required,min=5,max=5000"`
}

type UpdateInquiryRequest struct {
	Status   *string `json:"status" binding:"omitempty,oneof=open in-progress resolved closed"`
	Priority *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Subject  *string `json:"subject" binding:"omitempty,max=200"`
}

// ReplaceContactRequest covers the admin-owned fields; the sender's message is never rewritten.
type ReplaceContactRequest struct {
	Status  string `json:"status" binding:"required,oneof=open in-progress resolved closed"`
	Subject string `json:"subject" binding:"omitempty,max=200"`
}

type ReplyRequest struct {
	Message string `json:"message" binding:"required,min=1,max=5000"`
}
