package redis

import (
	"context"
	"fmt"

	"github.com/AdwikaVishal/Disaster-Management/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient создает клиент Redis для кеша, очередей и блокировок
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	poolSize := cfg.RedisPool
	if poolSize <= 0 {
		poolSize = 10
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		PoolSize: poolSize,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}

	return rdb, nil
}
