package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"careers/internal/config"
)

// NewRedis creates a client for the redis repository backend and verifies
// the server answers.
func NewRedis(ctx context.Context, c config.RedisConfig) (*redis.Client, error) {
	if c.Addr == "" {
		return nil, fmt.Errorf("invalid redis config: addr is required")
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         c.Addr,
		Password:     c.Password,
		DB:           c.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}
