package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthshop/backend/internal/logger"
)

func TestKeys(t *testing.T) {
	id := uuid.MustParse("8a1f6a2e-2f4b-4d8e-9d2a-0c1b2a3d4e5f")
	assert.Equal(t, "insights:dashboard:8a1f6a2e-2f4b-4d8e-9d2a-0c1b2a3d4e5f", InsightsKey(id))
	assert.Equal(t, "insights:recommendations:8a1f6a2e-2f4b-4d8e-9d2a-0c1b2a3d4e5f", RecommendationsKey(id))
	assert.Equal(t, []string{InsightsKey(id), RecommendationsKey(id)}, UserKeys(id))
}

func TestNoopAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	var c Cache = Noop{}
	require.NoError(t, c.Set(ctx, "k", map[string]int{"a": 1}))

	var out map[string]int
	hit, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, out)
	assert.NoError(t, c.Delete(ctx, "k"))
}

func TestRedisCacheUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	c := NewRedisCache(client, time.Minute, logger.NewNop())

	var out map[string]int
	hit, err := c.Get(context.Background(), "k", &out)
	assert.Error(t, err)
	assert.False(t, hit)
	assert.Error(t, c.Set(context.Background(), "k", 1))
	assert.NoError(t, c.Delete(context.Background()))
}
