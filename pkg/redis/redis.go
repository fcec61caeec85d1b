// pkg/redis/redis.go
package redis

import (
	"context"
	"fmt"
	"log"
	"time"

	"principal-lookup/internal/config"

	"github.com/go-redis/redis/v8"
)

func NewRedisClient(cfg *config.Config) (*redis.Client, func(), error) {
	options := &redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		DialTimeout:  time.Duration(cfg.Redis.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Redis.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Redis.WriteTimeout) * time.Second,
		PoolTimeout:  time.Duration(cfg.Redis.PoolTimeout) * time.Second,
	}

	client := redis.NewClient(options)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if _, err := client.Ping(pingCtx).Result(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping failed: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Printf("failed to close redis client: %v", err)
		}
	}

	return client, cleanup, nil
}
