package middleware_test

import (
	"net/http"
	"testing"

	"github.com/BadarHossain1/maplenest-admin-api/middleware"
	"github.com/stretchr/testify/assert"
)

func TestActionFor(t *testing.T) {
	tests := []struct {
		method       string
		route        string
		action       string
		resourceType string
		ok           bool
	}{
		{http.MethodPost, "/api/categories", "created_category", "category", true},
		{http.MethodPut, "/api/products/:id", "updated_product", "product", true},
		{http.MethodPatch, "/api/products/:id", "updated_product", "product", true},
		{http.MethodDelete, "/api/users/:id", "deleted_customer", "customer", true},
		{http.MethodPatch, "/api/orders/:id/status", "updated_status_order", "order", true},
		{http.MethodPost, "/api/contacts/:id/replies", "replied_contact", "contact", true},
		{http.MethodPost, "/api/support-tickets/:id/replies", "replied_support_ticket", "support_ticket", true},
		{http.MethodPost, "/api/discounts/:id/redeem", "redeemed_discount", "discount", true},
		{http.MethodPost, "/api/discounts/validate", "", "", false},
		{http.MethodGet, "/api/categories", "", "", false},
		{http.MethodPost, "/api/unknown", "", "", false},
		{http.MethodPost, "/health", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.route, func(t *testing.T) {
			action, resourceType, ok := middleware.ActionFor(tc.method, tc.route)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.resourceType, resourceType)
		})
	}
}
