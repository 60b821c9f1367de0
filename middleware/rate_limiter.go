package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter is a fixed-window limiter keyed per IP, method and route. It
// lets everything through when Redis is not configured.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		rdb := config.RedisClient
		if rdb == nil {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		// /api/products, /api/products/:id, etc.
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
		resetKey := key + ":resetAt"

		// INCR and the window TTL go out in one MULTI; EXPIRE NX only sets a
		// TTL on a counter that has none.
		pipe := rdb.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		pipe.SetNX(ctx, resetKey, time.Now().Add(window).Unix(), window)
		reset := pipe.Get(ctx, resetKey)
		if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
			logger.L().Error("[rate-limit] redis pipeline failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse(c, "Rate limiter unavailable"))
			return
		}
		count := incr.Val()

		resetAtUnix, err := reset.Int64()
		if err != nil {
			resetAtUnix = time.Now().Add(window).Unix()
		}
		resetAt := time.Unix(resetAtUnix, 0)

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			c.Header("Retry-After", itoa(resetInSeconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse(c, "Too many requests"))
			return
		}

		c.Next()
	}
}
