package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusRefunded,
}

// OrderItem is a line of an order, stored as part of the order document.
type OrderItem struct {
	ProductID    string  `json:"productId" binding:"required"`
	ProductName  string  `json:"productName" binding:"required"`
	Price        float64 `json:"price" binding:"min=0"`
	Quantity     int     `json:"quantity" binding:"required,min=1"`
	SelectedSize string  `json:"selectedSize,omitempty"`
	ColorName    string  `json:"colorName,omitempty"`
}

// OrderSummary is stored inline as summary_subtotal, summary_shipping, ...
type OrderSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping" binding:"min=0"`
	Tax      float64 `json:"tax" binding:"min=0"`
	Total    float64 `json:"total"`
}

type ShippingAddress struct {
	FullName   string `json:"fullName" binding:"omitempty,max=120"`
	Street     string `json:"street" binding:"omitempty,max=200"`
	City       string `json:"city" binding:"omitempty,max=100"`
	State      string `json:"state" binding:"omitempty,max=100"`
	PostalCode string `json:"postalCode" binding:"omitempty,max=20"`
	Country    string `json:"country" binding:"omitempty,max=100"`
	Phone      string `json:"phone" binding:"omitempty,max=30"`
}

// Order represents a complete customer order
type Order struct {
	ID              uuid.UUID                      `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID         string                         `json:"orderId" gorm:"not null;uniqueIndex"`
	UserEmail       string                         `json:"userEmail" gorm:"not null;index"`
	Items           datatypes.JSONSlice[OrderItem] `json:"items"`
	OrderSummary    OrderSummary                   `json:"orderSummary" gorm:"embedded;embeddedPrefix:summary_"`
	ShippingAddress ShippingAddress                `json:"shippingAddress" gorm:"embedded;embeddedPrefix:ship_"`
	Status          string                         `json:"status" gorm:"not null;index"`
	StatusNote      string                         `json:"statusNote,omitempty"`
	Channel         string                         `json:"channel" gorm:"not null;index"`
	OrderDate       time.Time                      `json:"orderDate" gorm:"not null;index"`
	CreatedAt       time.Time                      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time                      `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (o *Order) AfterFind(tx *gorm.DB) error {
	if o.Items == nil {
		o.Items = datatypes.JSONSlice[OrderItem]{}
	}
	return nil
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// Countable reports whether the order contributes to revenue figures.
func (o *Order) Countable() bool {
	return o.Status != OrderStatusCancelled && o.Status != OrderStatusRefunded
}

// Units is the total quantity across the order's items.
func (o *Order) Units() int {
	units := 0
	for _, it := range o.Items {
		units += it.Quantity
	}
	return units
}

// ═══════════════════════════════════════════════════════════
// Request / Response Models
// ═══════════════════════════════════════════════════════════

type CreateOrderRequest struct {
	OrderID         string          `json:"orderId" binding:"omitempty,max=40"`
	UserEmail       string          `json:"userEmail" binding:"required,email"`
	Items           []OrderItem     `json:"items" binding:"required,min=1,dive"`
	OrderSummary    OrderSummary    `json:"orderSummary"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Status          string          `json:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled refunded"`
	Channel         string          `json:"channel" binding:"omitempty,max=40"`
	OrderDate       *time.Time      `json:"orderDate"`
}

type UpdateOrderRequest struct {
	UserEmail       *string          `json:"userEmail" binding:"omitempty,email"`
	Items           *[]OrderItem     `json:"items" binding:"omitempty,min=1,dive"`
	OrderSummary    *OrderSummary    `json:"orderSummary"`
	ShippingAddress *ShippingAddress `json:"shippingAddress"`
	Channel         *string          `json:"channel" binding:"omitempty,max=40"`
	OrderDate       *time.Time       `json:"orderDate"`
}

type UpdateOrderStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled refunded"`
	Note   *string `json:"note"`
}

type OrderStatsResponse struct {
	TotalOrders int            `json:"totalOrders"`
	ByStatus    map[string]int `json:"byStatus"`
	Revenue     float64        `json:"revenue"`
	AverageSale float64        `json:"averageOrderValue"`
}
