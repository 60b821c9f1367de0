package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups products on the storefront.
type Category struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"not null;uniqueIndex"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Banner      string    `json:"banner"`
	IsActive    bool      `json:"isActive" gorm:"not null;index"`
	SortOrder   int       `json:"sortOrder" gorm:"not null;default:0;index"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	// Computed from live product counts, never stored.
	ItemCount string `json:"itemCount" gorm:"-"`
}

// BeforeCreate hook - auto-generate UUID v7
func (cat *Category) BeforeCreate(tx *gorm.DB) error {
	if cat.ID == uuid.Nil {
		cat.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// CategoryWithProducts is a category as listed by the dashboard, with its
// product count.
type CategoryWithProducts struct {
	Category
	Products int `json:"products"`
}

// ════════════════════════════════════════════════════════════
// Request Models
// ════════════════════════════════════════════════════════════

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Slug        string `json:"slug" binding:"omitempty,max=120,slug"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Image       string `json:"image" binding:"omitempty,url"`
	Banner      string `json:"banner" binding:"omitempty,url"`
	IsActive    *bool  `json:"isActive"`
	SortOrder   int    `json:"sortOrder" binding:"min=0"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Slug        *string `json:"slug" binding:"omitempty,max=120,slug"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Image       *string `json:"image" binding:"omitempty,url"`
	Banner      *string `json:"banner" binding:"omitempty,url"`
	IsActive    *bool   `json:"isActive"`
	SortOrder   *int    `json:"sortOrder" binding:"omitempty,min=0"`
}

type UpdateCategoryStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
