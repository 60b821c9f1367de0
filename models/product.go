package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Embedded / JSON Type Definitions
// ═══════════════════════════════════════════════════════════

// ProductPrice is stored inline as price_original, price_current, price_cost.
type ProductPrice struct {
	Original float64 `json:"original" binding:"min=0"`
	Current  float64 `json:"current" binding:"required,min=0"`
	Cost     float64 `json:"cost" binding:"min=0"`
}

type ProductSize struct {
	Size  string `json:"size" binding:"required,max=20" example:"M"`
	Stock int    `json:"stock" binding:"min=0" example:"12"`
}

type ProductColor struct {
	Name string `json:"name" binding:"required,max=40" example:"Forest Green"`
	Hex  string `json:"hex" binding:"required,hexrgb" example:"#228B22"`
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID              uuid.UUID                         `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string                            `json:"name" gorm:"not null;index"`
	Description     string                            `json:"description"`
	CategoryID      *uuid.UUID                        `json:"categoryId" gorm:"type:uuid;index"`
	CategoryName    string                            `json:"categoryName"`
	Images          datatypes.JSONSlice[string]       `json:"images"`
	Video           string                            `json:"video"`
	Price           ProductPrice                      `json:"price" gorm:"embedded;embeddedPrefix:price_"`
	Sizes           datatypes.JSONSlice[ProductSize]  `json:"sizes"`
	TotalStock      int                               `json:"totalStock" gorm:"not null;default:0;index"`
	Colors          datatypes.JSONSlice[ProductColor] `json:"colors"`
	Material        string                            `json:"material"`
	Origin          string                            `json:"origin"`
	Care            string                            `json:"care"`
	Fit             string                            `json:"fit"`
	Features        datatypes.JSONSlice[string]       `json:"features"`
	IsNewArrival    bool                              `json:"isNewArrival" gorm:"index"`
	IsFeatured      bool                              `json:"isFeatured" gorm:"index"`
	IsTopCollection bool                              `json:"isTopCollection" gorm:"index"`
	CreatedAt       time.Time                         `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time                         `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// BeforeSave keeps TotalStock equal to the sum of the per-size stock.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.TotalStock = SumStock(p.Sizes)
	return nil
}

// AfterFind hook - never hand nil lists to the dashboard
func (p *Product) AfterFind(tx *gorm.DB) error {
	if p.Images == nil {
		p.Images = datatypes.JSONSlice[string]{}
	}
	if p.Sizes == nil {
		p.Sizes = datatypes.JSONSlice[ProductSize]{}
	}
	if p.Colors == nil {
		p.Colors = datatypes.JSONSlice[ProductColor]{}
	}
	if p.Features == nil {
		p.Features = datatypes.JSONSlice[string]{}
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// SumStock totals the stock across sizes.
func SumStock(sizes []ProductSize) int {
	total := 0
	for _, s := range sizes {
		total += s.Stock
	}
	return total
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name            string         `json:"name" binding:"required,min=2,max=200" example:"Linen Shirt"`
	Description     string         `json:"description" binding:"omitempty,max=5000"`
	CategoryID      *uuid.UUID     `json:"categoryId"`
	Images          []string       `json:"images" binding:"omitempty,dive,url"`
	Video           string         `json:"video" binding:"omitempty,url"`
	Price           ProductPrice   `json:"price" binding:"required"`
	Sizes           []ProductSize  `json:"sizes" binding:"omitempty,dive"`
	Colors          []ProductColor `json:"colors" binding:"omitempty,dive"`
	Material        string         `json:"material" binding:"omitempty,max=200"`
	Origin          string         `json:"origin" binding:"omitempty,max=100"`
	Care            string         `json:"care" binding:"omitempty,max=1000"`
	Fit             string         `json:"fit" binding:"omitempty,max=100"`
	Features        []string       `json:"features" binding:"omitempty,dive,max=200"`
	IsNewArrival    bool           `json:"isNewArrival"`
	IsFeatured      bool           `json:"isFeatured"`
	IsTopCollection bool           `json:"isTopCollection"`
}

type UpdateProductRequest struct {
	Name            *string         `json:"name" binding:"omitempty,min=2,max=200"`
	Description     *string         `json:"description" binding:"omitempty,max=5000"`
	CategoryID      *uuid.UUID      `json:"categoryId"`
	Images          *[]string       `json:"images" binding:"omitempty,dive,url"`
	Video           *string         `json:"video" binding:"omitempty,url"`
	Price           *ProductPrice   `json:"price"`
	Sizes           *[]ProductSize  `json:"sizes" binding:"omitempty,dive"`
	Colors          *[]ProductColor `json:"colors" binding:"omitempty,dive"`
	Material        *string         `json:"material" binding:"omitempty,max=200"`
	Origin          *string         `json:"origin" binding:"omitempty,max=100"`
	Care            *string         `json:"care" binding:"omitempty,max=1000"`
	Fit             *string         `json:"fit" binding:"omitempty,max=100"`
	Features        *[]string       `json:"features" binding:"omitempty,dive,max=200"`
	IsNewArrival    *bool           `json:"isNewArrival"`
	IsFeatured      *bool           `json:"isFeatured"`
	IsTopCollection *bool           `json:"isTopCollection"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type ProductStats struct {
	TotalProducts  int     `json:"totalProducts"`
	Featured       int     `json:"featured"`
	NewArrivals    int     `json:"newArrivals"`
	TopCollection  int     `json:"topCollection"`
	OutOfStock     int     `json:"outOfStock"`
	LowStock       int     `json:"lowStock"`
	TotalInventory int     `json:"totalInventory"`
	InventoryCost  float64 `json:"inventoryCost"`
	RetailValue    float64 `json:"retailValue"`
}

// LowStockThreshold marks a product as low stock when TotalStock falls below it.
const LowStockThreshold = 10
