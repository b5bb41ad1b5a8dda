package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/localnerve/materialsdb/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutRedisIsNop(t *testing.T) {
	c, err := New(&config.Config{})
	require.NoError(t, err)
	assert.IsType(t, Nop{}, c)

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", 1))
	var v int
	assert.False(t, c.Get(ctx, "k", &v))
	assert.NoError(t, c.Ping(ctx))
}

func TestNewRedisRejectsBadURL(t *testing.T) {
	_, err := NewRedis("http://not-redis", time.Minute)
	assert.ErrorContains(t, err, "invalid REDIS_URL")
}

func TestUnavailableStoresNothingAndReportsItsError(t *testing.T) {
	down := errors.New("dial tcp: connection refused")
	var c Cache = Unavailable{Err: down}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 1))
	var v int
	assert.False(t, c.Get(ctx, "k", &v))
	require.NoError(t, c.Delete(ctx, "k"))
	assert.ErrorIs(t, c.Ping(ctx), down)
}
