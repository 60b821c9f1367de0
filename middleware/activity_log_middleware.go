package middleware

import (
	"net/http"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// routeToResourceType maps the first segment after /api to a resource type
var routeToResourceType = map[string]string{
	"categories":      models.ResourceTypeCategory,
	"products":        models.ResourceTypeProduct,
	"orders":          models.ResourceTypeOrder,
	"users":           models.ResourceTypeCustomer,
	"discounts":       models.ResourceTypeDiscount,
	"campaigns":       models.ResourceTypeCampaign,
	"contacts":        models.ResourceTypeContact,
	"support-tickets": models.ResourceTypeSupportTicket,
	"reviews":         models.ResourceTypeReview,
}

var methodToActionVerb = map[string]string{
	http.MethodPost:   "created",
	http.MethodPatch:  "updated",
	http.MethodPut:    "updated",
	http.MethodDelete: "deleted",
}

// sub-resource routes get their own verbs
var subrouteToActionVerb = map[string]string{
	"status":  "updated_status",
	"replies": "replied",
	"redeem":  "redeemed",
}

// read-only POST routes
var skipActionRoutes = map[string]bool{
	"validate": true,
}

// ActivityLoggingMiddleware records successful admin mutations. It must run
// after AdminAuthMiddleware, which sets adminID and adminEmail.
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		adminID, ok := c.Get("adminID")
		if !ok {
			return
		}
		id, _ := adminID.(uuid.UUID)

		action, resourceType, ok := ActionFor(c.Request.Method, c.FullPath())
		if !ok {
			return
		}

		resourceID := c.Param("id")
		if resourceID == "" {
			resourceID = c.GetString(services.CreatedResourceKey)
		}

		entry := models.ActivityLog{
			AdminID:      id,
			AdminEmail:   c.GetString("adminEmail"),
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			Method:       c.Request.Method,
			Path:         c.Request.URL.Path,
			StatusCode:   status,
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
		}
		if err := services.RecordActivity(c.Request.Context(), entry); err != nil {
			logger.L().Warn("[activity-logging] failed to record", zap.String("action", action), zap.Error(err))
			return
		}
		logger.L().Debug("[activity-logging] recorded", zap.String("action", action), zap.String("admin", entry.AdminEmail))
	}
}

// ActionFor derives the action name from the route template, e.g.
// PATCH /api/orders/:id/status -> updated_status_order.
func ActionFor(method, route string) (action, resourceType string, ok bool) {
	parts := strings.Split(strings.Trim(route, "/"), "/")
	if len(parts) < 2 || parts[0] != "api" {
		return "", "", false
	}
	resourceType, ok = routeToResourceType[parts[1]]
	if !ok {
		return "", "", false
	}

	last := parts[len(parts)-1]
	if skipActionRoutes[last] {
		return "", "", false
	}
	verb := methodToActionVerb[method]
	if sub, found := subrouteToActionVerb[last]; found && len(parts) > 2 {
		verb = sub
	}
	if verb == "" {
		return "", "", false
	}
	return verb + "_" + resourceType, resourceType, true
}
