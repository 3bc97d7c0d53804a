package database

import (
	"context"
	"fmt"

	appconfig "oficina_pro/internal/infrastructure/config"
	"oficina_pro/pkg/logger"

	"github.com/redis/go-redis/v9"
)

func ConnectRedis(ctx context.Context, cfg appconfig.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	logger.Infof(ctx, "[database][redis] connected addr=%s db=%d", cfg.Addr, cfg.DB)
	return rdb, nil
}
