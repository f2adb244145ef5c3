package database

import (
	"context"
	"fmt"
	"time"

	"ai-solutions-go/internal/config"
	"ai-solutions-go/pkg/log"

	"github.com/go-redis/redis/v8"
)

// RDB holds the notification counters, the token blacklist and the event attempt counters.
var RDB *redis.Client

// OpenRedis creates a client and pings it.
func OpenRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// InitRedis sets RDB and exits the process when Redis is unreachable.
func InitRedis(cfg config.RedisConfig) {
	client, err := OpenRedis(context.Background(), cfg)
	if err != nil {
		log.Fatal("failed to connect to redis", err)
	}
	RDB = client
	log.Infof("redis connected (addr=%s, db=%d)", cfg.Addr, cfg.DB)
}
