package config

import (
	"context"
	"fmt"

	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisClient stays nil when REDIS_URL is unset; rate limiting is then off.
var RedisClient *redis.Client

func ConnectRedis(cfg *AppConfig) error {
	if cfg.RedisURL == "" {
		logger.L().Warn("REDIS_URL not set, rate limiting disabled")
		return nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx, cancel := WithTimeout()
	defer cancel()

	res, err := client.Ping(ctx).Result()
	if err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	RedisClient = client
	logger.L().Info("connected to Redis", zap.String("ping", res))
	return nil
}

// PingRedis reports nil when Redis is healthy or not configured.
func PingRedis(ctx context.Context) error {
	if RedisClient == nil {
		return nil
	}
	return RedisClient.Ping(ctx).Err()
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
