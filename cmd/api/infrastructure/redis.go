package infrastructure

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"shop-service/internal/config"
	redisclient "shop-service/pkg/redis"
)

// NewRedisClient connects to the Redis instance backing the rate limiter.
func NewRedisClient(cfg *config.Config, l *zap.Logger) (*redisclient.Client, error) {
	rdb, err := redisclient.NewClient(context.Background(), redisclient.Config{
		Host:        cfg.Redis.Host,
		Port:        cfg.Redis.Port,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		MaxRetries:  cfg.Redis.MaxRetries,
		PoolSize:    cfg.Redis.PoolSize,
		MinIdleConn: cfg.Redis.MinIdleConn,
	}, l)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}
