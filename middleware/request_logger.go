package middleware

import (
	"strconv"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger writes one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", c.GetString("requestID")),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			logger.L().Error("HTTP Request", fields...)
		case status >= 400:
			logger.L().Warn("HTTP Request", fields...)
		default:
			logger.L().Info("HTTP Request", fields...)
		}
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
