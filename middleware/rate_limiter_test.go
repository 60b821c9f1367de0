package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/middleware"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedRouter(max int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RateLimiter(max, time.Minute))
	r.GET("/api/products", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/orders", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func useMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	prev := config.RedisClient
	config.RedisClient = client
	t.Cleanup(func() {
		config.RedisClient = prev
		client.Close()
	})
	return mr
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "203.0.113.7:4242"
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterDisabledWithoutRedis(t *testing.T) {
	prev := config.RedisClient
	config.RedisClient = nil
	t.Cleanup(func() { config.RedisClient = prev })

	r := limitedRouter(1)
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get(r, "/api/products").Code)
	}
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	mr := useMiniredis(t)
	r := limitedRouter(2)

	assert.Equal(t, http.StatusOK, get(r, "/api/products").Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/products").Code)

	w := get(r, "/api/products")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// Windows are per route
	assert.Equal(t, http.StatusOK, get(r, "/api/orders").Code)

	key := "rl:203.0.113.7:GET:/api/products"
	assert.True(t, mr.Exists(key))
	assert.Greater(t, mr.TTL(key), time.Duration(0))

	mr.FastForward(2 * time.Minute)
	assert.Equal(t, http.StatusOK, get(r, "/api/products").Code)
}

func TestRateLimiterRestoresMissingTTL(t *testing.T) {
	mr := useMiniredis(t)
	key := "rl:203.0.113.7:GET:/api/products"
	// a counter stranded without expiry
	require.NoError(t, mr.Set(key, "50"))
	require.Zero(t, mr.TTL(key))

	w := get(limitedRouter(10), "/api/products")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Greater(t, mr.TTL(key), time.Duration(0))

	mr.FastForward(2 * time.Minute)
	assert.Equal(t, http.StatusOK, get(limitedRouter(10), "/api/products").Code)
}

func TestRateLimiterFailsClosedOnRedisError(t *testing.T) {
	mr := useMiniredis(t)
	mr.SetError("boom")

	w := get(limitedRouter(5), "/api/products")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
