package models

// CreateCustomerRequest is used when an admin registers a customer by hand
type CreateCustomerRequest struct {
	FullName        string `json:"fullName" binding:"required,min=2,max=255"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"omitempty,min=7,max=20"`
	Location        string `json:"location" binding:"omitempty,max=255"`
	Segment         string `json:"segment" binding:"omitempty,oneof=vip loyal new-buyer seasonal-shopper"`
	IsActive        *bool  `json:"isActive"`
	IsEmailVerified bool   `json:"isEmailVerified"`
}

// UpdateCustomerRequest is used when admin updates customer info
type UpdateCustomerRequest struct {
	FullName        *string `json:"fullName" binding:"omitempty,min=2,max=255"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Phone           *string `json:"phone" binding:"omitempty,min=7,max=20"`
	Location        *string `json:"location" binding:"omitempty,max=255"`
	Segment         *string `json:"segment" binding:"omitempty,oneof=vip loyal new-buyer seasonal-shopper none"`
	IsActive        *bool   `json:"isActive"`
	IsEmailVerified *bool   `json:"isEmailVerified"`
}

// CustomerStats represents customer dashboard statistics
type CustomerStats struct {
	TotalCustomers    int            `json:"totalCustomers"`
	ActiveCustomers   int            `json:"activeCustomers"`
	VerifiedCustomers int            `json:"verifiedCustomers"`
	NewThisMonth      int            `json:"newThisMonth"`
	BySegment         map[string]int `json:"bySegment"`
}
