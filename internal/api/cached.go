package api

import (
	"context"

	"github.com/pageza/healthshop/backend/internal/cache"
	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/metrics"
)

// cachedPayload serves key from the cache, computing and storing it on a
// miss. Cache failures degrade to computing the payload.
func cachedPayload[T any](ctx context.Context, store cache.Cache, m *metrics.Metrics, log *logger.Logger, payload, key string, compute func() (*T, error)) (*T, error) {
	var out T
	hit, err := store.Get(ctx, key, &out)
	if err != nil {
		log.Warn("cache read failed", "payload", payload, "error", err)
	}
	m.CacheResult(payload, hit)
	if hit {
		return &out, nil
	}

	fresh, err := compute()
	if err != nil {
		return nil, err
	}
	if err := store.Set(ctx, key, fresh); err != nil {
		log.Warn("cache write failed", "payload", payload, "error", err)
	}
	return fresh, nil
}
