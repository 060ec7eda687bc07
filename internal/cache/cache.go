package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/healthshop/backend/internal/logger"
)

// Cache stores JSON snapshots of computed payloads.
type Cache interface {
	// Get decodes the cached value into dest. A miss is (false, nil).
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// InsightsKey is the cache key of a user's insights dashboard.
func InsightsKey(userID uuid.UUID) string {
	return fmt.Sprintf("insights:dashboard:%s", userID)
}

// RecommendationsKey is the cache key of a user's recommendation aggregate.
func RecommendationsKey(userID uuid.UUID) string {
	return fmt.Sprintf("insights:recommendations:%s", userID)
}

// UserKeys lists every cached payload derived from a user's profile.
func UserKeys(userID uuid.UUID) []string {
	return []string{InsightsKey(userID), RecommendationsKey(userID)}
}

// RedisCache keeps payloads in redis with a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

var _ Cache = (*RedisCache)(nil)

// NewRedisCache creates a new RedisCache instance
func NewRedisCache(client *redis.Client, ttl time.Duration, baseLog *logger.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, log: baseLog.With("component", "cache")}
}

func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s from redis: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	c.log.Debug("cache hit", "key", key)
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s to redis: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys from redis: %w", err)
	}
	return nil
}

// Noop never stores anything. Used when redis is not configured.
type Noop struct{}

var _ Cache = Noop{}

func (Noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, interface{}) error { return nil }
func (Noop) Delete(context.Context, ...string) error { return nil }
