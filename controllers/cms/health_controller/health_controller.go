package health_controller

import (
	"context"
	"net/http"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const readinessTimeout = 2 * time.Second

// Liveness godoc
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness godoc
// @Summary Readiness check
// @Description Pings Postgres and, when configured, Redis
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /health/ready [get]
func Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	checks := gin.H{"database": "ok", "redis": "disabled"}
	ready := true

	if err := pingDatabase(ctx); err != nil {
		logger.L().Warn("[health] database not ready", zap.Error(err))
		checks["database"] = "unavailable"
		ready = false
	}
	if config.RedisClient != nil {
		checks["redis"] = "ok"
		if err := config.PingRedis(ctx); err != nil {
			logger.L().Warn("[health] redis not ready", zap.Error(err))
			checks["redis"] = "unavailable"
			ready = false
		}
	}

	status := http.StatusOK
	state := "ready"
	if !ready {
		status = http.StatusServiceUnavailable
		state = "not ready"
	}
	c.JSON(status, gin.H{"status": state, "checks": checks})
}

func pingDatabase(ctx context.Context) error {
	if config.Pool != nil {
		return config.Pool.Ping(ctx)
	}
	sqlDB, err := config.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
