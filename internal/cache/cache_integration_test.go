//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthshop/backend/internal/logger"
	th "github.com/pageza/healthshop/backend/internal/testhelpers"
)

type payload struct {
	Score int      `json:"score"`
	Tips  []string `json:"tips"`
}

func TestRedisCacheRoundTrip(t *testing.T) {
	client := th.SetupRedis(t)
	c := NewRedisCache(client, time.Minute, logger.NewNop())
	ctx := context.Background()

	var out payload
	hit, err := c.Get(ctx, "missing", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "user:1", payload{Score: 72, Tips: []string{"Stay Hydrated"}}))
	ttl, err := client.TTL(ctx, "user:1").Result()
	require.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= time.Minute)

	hit, err = c.Get(ctx, "user:1", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{Score: 72, Tips: []string{"Stay Hydrated"}}, out)

	require.NoError(t, c.Delete(ctx, "user:1", "user:2"))
	hit, err = c.Get(ctx, "user:1", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}
