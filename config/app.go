package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig is read once at startup from the environment (and .env).
type AppConfig struct {
	Port        string
	Env         string
	LogLevel    string
	DatabaseURL string
	RedisURL    string
	JWTSecret   string
	AutoMigrate bool

	AllowedOrigins []string

	RateLimitEnabled bool
	RateLimitMax     int
	RateLimitWindow  time.Duration
}

const devJWTSecret = "dev-secret-key-change-in-production"

// Load builds the configuration. JWT_SECRET is mandatory outside development.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:             getEnv("PORT", "8081"),
		Env:              getEnv("APP_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DatabaseURL:      databaseURL(),
		RedisURL:         os.Getenv("REDIS_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		AutoMigrate:      getBool("AUTO_MIGRATE", true),
		AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		RateLimitEnabled: getBool("RATE_LIMIT_ENABLED", true),
		RateLimitMax:     getInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow:  getDuration("RATE_LIMIT_WINDOW", time.Minute),
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("JWT_SECRET environment variable not set")
		}
		cfg.JWTSecret = devJWTSecret
	}
	if cfg.RateLimitMax < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", cfg.RateLimitMax)
	}
	return cfg, nil
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "maplenest_admin"),
		getEnv("DB_PORT", "5432"),
	)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
