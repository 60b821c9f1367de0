// @title MapleNest Admin API
// @version 1.0
// @description Admin dashboard API for the MapleNest store: catalogue, orders, customers, marketing, support, analytics and financial reports
// @host localhost:8081
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/controllers/cms/health_controller"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/middleware"
	"github.com/BadarHossain1/maplenest-admin-api/routes/cms_routes"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const serviceName = "maplenest-admin-api"

func init() {
	_ = godotenv.Load()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.InitLogger(logger.LogConfig{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
		ServiceName: serviceName,
	}); err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.L()

	if err := config.InitDB(cfg); err != nil {
		return err
	}
	defer config.CloseDB()

	if err := config.ConnectRedis(cfg); err != nil {
		log.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
	}
	defer config.CloseRedis()

	if err := services.InitJWTService(cfg.JWTSecret); err != nil {
		return err
	}
	utils.SetupValidator()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func newRouter(cfg *config.AppConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics(serviceName))

	// Expose Content-Disposition so the dashboard can name CSV and PDF downloads
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", health_controller.Liveness)
	router.GET("/health/ready", health_controller.Readiness)
	router.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	api := router.Group("/api")
	if cfg.RateLimitEnabled {
		api.Use(middleware.RateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow))
	}
	cms_routes.SetupRoutes(api)

	return router
}
