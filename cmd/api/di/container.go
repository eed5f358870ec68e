package di

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"shop-service/cmd/api/infrastructure"
	"shop-service/internal/adapter/db/gormstore"
	"shop-service/internal/adapter/db/schema"
	ginhandler "shop-service/internal/adapter/gin/handler"
	ginrouter "shop-service/internal/adapter/gin/router"
	"shop-service/internal/adapter/grpc/middleware"
	"shop-service/internal/config"
	"shop-service/internal/usecase/order"
	"shop-service/internal/usecase/product"
	"shop-service/internal/usecase/user"
	redisclient "shop-service/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client // nil unless rate limiting is enabled
	RateLimiter *middleware.RateLimiter
	Handlers    ginrouter.Handlers
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	c := &Container{
		Config: cfg,
		Logger: l,
		DB:     db,
	}

	if err := schema.Migrate(context.Background(), db, l); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if cfg.RateLimit.Enabled {
		rdb, err := infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		c.RedisClient = rdb
		c.RateLimiter = middleware.NewRateLimiter(
			rdb.Client,
			middleware.RateLimiterConfig{
				RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
				BurstCapacity:     cfg.RateLimit.BurstCapacity,
				Enabled:           true,
			},
			l,
		)
	}

	userRepo := gormstore.NewUserRepo(db, l)
	productRepo := gormstore.NewProductRepo(db, l)
	orderRepo := gormstore.NewOrderRepo(db, l)

	userUC := user.New(userRepo, l)
	productUC := product.New(productRepo, l)
	orderUC := order.New(orderRepo, userRepo, l)

	c.Handlers = ginrouter.Handlers{
		User:    ginhandler.NewUserHandler(userUC, l),
		Product: ginhandler.NewProductHandler(productUC, l),
		Order:   ginhandler.NewOrderHandler(orderUC, l),
	}

	return c, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	return errors.Join(errs...)
}
