package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AdminRoleAdmin      = "admin"
	AdminRoleSuperAdmin = "super_admin"

	AdminStatusActive    = "active"
	AdminStatusSuspended = "suspended"
)

// ════════════════════════════════════════════════════════════
// Database Models
// ════════════════════════════════════════════════════════════

// Admin is a dashboard operator
type Admin struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	Name         string     `json:"name" gorm:"not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         string     `json:"role" gorm:"not null;index"`
	Status       string     `json:"status" gorm:"not null;index"`
	LastLoginAt  *time.Time `json:"lastLoginAt"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	if a.Status == "" {
		a.Status = AdminStatusActive
	}
	if a.Role == "" {
		a.Role = AdminRoleAdmin
	}
	return nil
}

// TableName specifies the table name
func (Admin) TableName() string {
	return "admins"
}

// ════════════════════════════════════════════════════════════
// Request / Response Models
// ════════════════════════════════════════════════════════════

// AdminLoginRequest is the request to login
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
}

// AdminResponse is the public response for admin data (no password hash)
type AdminResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// AdminLoginResponse is the response after login
type AdminLoginResponse struct {
	Admin AdminResponse `json:"admin"`
	Token string        `json:"token"`
}

// ToResponse converts an Admin model to AdminResponse
func (a *Admin) ToResponse() AdminResponse {
	return AdminResponse{
		ID:          a.ID,
		Email:       a.Email,
		Name:        a.Name,
		Role:        a.Role,
		Status:      a.Status,
		LastLoginAt: a.LastLoginAt,
		CreatedAt:   a.CreatedAt,
	}
}
