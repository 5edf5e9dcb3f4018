package db

import (
	"context"
	"fmt"

	"gym-membership-go/internal/config"
	"gym-membership-go/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

func NewRedis(cfg config.RedisConfig, log logger.Logger) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}

	client := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Info("redis: connected", "addr", opts.Addr, "db", opts.DB, "pool_size", opts.PoolSize)
	return client, nil
}
