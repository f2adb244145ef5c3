package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const notificationKeyPrefix = "site:notifications:"

// NotificationRepository keeps per-kind counters of submissions an admin has not looked at yet.
type NotificationRepository interface {
	Increment(ctx context.Context, kind string) (int64, error)
	Counters(ctx context.Context) (map[string]int64, error)
	Reset(ctx context.Context, kind string) error
}

type redisNotificationRepository struct {
	redisClient *redis.Client
}

// NewNotificationRepository creates a NotificationRepository backed by Redis.
func NewNotificationRepository(redisClient *redis.Client) NotificationRepository {
	return &redisNotificationRepository{redisClient: redisClient}
}

func (r *redisNotificationRepository) Increment(ctx context.Context, kind string) (int64, error) {
	n, err := r.redisClient.Incr(ctx, notificationKeyPrefix+kind).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment notification counter: %w", err)
	}
	return n, nil
}

// Counters returns every counter keyed by kind.
func (r *redisNotificationRepository) Counters(ctx context.Context) (map[string]int64, error) {
	result := make(map[string]int64)
	iter := r.redisClient.Scan(ctx, 0, notificationKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		n, err := r.redisClient.Get(ctx, key).Int64()
		if err != nil {
			continue
		}
		result[strings.TrimPrefix(key, notificationKeyPrefix)] = n
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan notification counters: %w", err)
	}
	return result, nil
}

func (r *redisNotificationRepository) Reset(ctx context.Context, kind string) error {
	return r.redisClient.Del(ctx, notificationKeyPrefix+kind).Err()
}

// TokenBlacklist records access tokens revoked by logout until they expire.
type TokenBlacklist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}

type redisTokenBlacklist struct {
	redisClient *redis.Client
}

// NewTokenBlacklist creates a TokenBlacklist backed by Redis.
func NewTokenBlacklist(redisClient *redis.Client) TokenBlacklist {
	return &redisTokenBlacklist{redisClient: redisClient}
}

func (b *redisTokenBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return b.redisClient.Set(ctx, "jwt:blacklist:"+token, 1, ttl).Err()
}

func (b *redisTokenBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	n, err := b.redisClient.Exists(ctx, "jwt:blacklist:"+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AttemptCounter counts failed processing attempts of a queued event, used to stop redelivery.
type AttemptCounter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Clear(ctx context.Context, key string) error
}

type redisAttemptCounter struct {
	redisClient *redis.Client
}

// NewAttemptCounter creates an AttemptCounter backed by Redis. Counters expire after a day.
func NewAttemptCounter(redisClient *redis.Client) AttemptCounter {
	return &redisAttemptCounter{redisClient: redisClient}
}

func (c *redisAttemptCounter) Incr(ctx context.Context, key string) (int64, error) {
	attemptsKey := "kafka:attempts:" + key
	n, err := c.redisClient.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return 0, err
	}
	_ = c.redisClient.Expire(ctx, attemptsKey, 24*time.Hour).Err()
	return n, nil
}

func (c *redisAttemptCounter) Clear(ctx context.Context, key string) error {
	return c.redisClient.Del(ctx, "kafka:attempts:"+key).Err()
}
