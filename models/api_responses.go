package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the envelope every endpoint answers with.
type ApiResponse struct {
	Success         bool              `json:"success"`
	Message         string            `json:"message,omitempty"`
	Data            any               `json:"data,omitempty"`
	Meta            *Pagination       `json:"meta,omitempty"`
	Errors          map[string]string `json:"errors,omitempty"`
	Rate            *RateLimiter      `json:"rateLimit,omitempty"`
	RequestedEntity string            `json:"requestedEntity,omitempty"`
}

type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"totalPages" example:"5"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"resetAt"`
	ResetInSeconds int       `json:"resetInSeconds"`
}

// helper to fetch rate limiter info from Gin context
func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func requestedEntity(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return ""
	}
	return c.Request.Method + " " + c.FullPath()
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Success:         true,
		Message:         message,
		Data:            data,
		Rate:            getRateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	return ApiResponse{
		Success:         true,
		Message:         message,
		Data:            data,
		Meta:            meta,
		Rate:            getRateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Success:         false,
		Message:         message,
		Rate:            getRateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

// ValidationErrorResponse carries field -> message pairs so the dashboard can
// mark the offending inputs.
func ValidationErrorResponse(c *gin.Context, message string, fields map[string]string) ApiResponse {
	resp := ErrorResponse(c, message)
	resp.Errors = fields
	return resp
}
