package di

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	ginhandler "user-management-api/internal/adapter/gin/handler"
	"user-management-api/internal/adapter/gin/middleware"
	"user-management-api/internal/adapter/repository/memory"
	"user-management-api/internal/config"
	"user-management-api/internal/usecase/user"
	redisclient "user-management-api/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Store       *memory.UserStore
	UserUC      user.Usecase
	GinHandler  *ginhandler.UserHandler
	RedisClient *redisclient.Client     // nil unless rate limiting is enabled
	RateLimiter *middleware.RateLimiter // nil unless rate limiting is enabled
}

// NewContainer creates and initializes all application dependencies
func NewContainer(ctx context.Context, cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	store := memory.NewUserStore(l)
	userUC := user.New(store, l)

	c := &Container{
		Config:     cfg,
		Logger:     l,
		Store:      store,
		UserUC:     userUC,
		GinHandler: ginhandler.NewUserHandler(userUC, l),
	}

	if cfg.RateLimit.Enabled {
		rdb, err := redisclient.NewClient(ctx, redisclient.Config{
			Host:        cfg.Redis.Host,
			Port:        cfg.Redis.Port,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			MaxRetries:  cfg.Redis.MaxRetries,
			PoolSize:    cfg.Redis.PoolSize,
			MinIdleConn: cfg.Redis.MinIdleConn,
		}, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}

		c.RedisClient = rdb
		c.RateLimiter = middleware.NewRateLimiter(
			rdb.Client,
			middleware.RateLimiterConfig{
				RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
				BurstCapacity:     cfg.RateLimit.BurstCapacity,
			},
			l,
		)
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

	return errors.Join(errs...)
}
