package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	cache := NewMemoryCache(10)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", "1", 0))

	val, ok := cache.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, "1", val)

	_, ok = cache.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache(10)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", "1", time.Minute))

	now = now.Add(30 * time.Second)
	_, ok := cache.Get(ctx, "a")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = cache.Get(ctx, "a")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_BoundedSize(t *testing.T) {
	cache := NewMemoryCache(2)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", "1", 0))
	require.NoError(t, cache.Set(ctx, "b", "2", 0))
	require.NoError(t, cache.Set(ctx, "c", "3", 0))

	assert.Equal(t, 2, cache.Len())
	val, ok := cache.Get(ctx, "c")
	assert.True(t, ok)
	assert.Equal(t, "3", val)

	// sobrescribir una clave existente no desaloja nada
	require.NoError(t, cache.Set(ctx, "c", "4", 0))
	assert.Equal(t, 2, cache.Len())
}

func TestMemoryCache_ExpireKeepsFreshEntry(t *testing.T) {
	cache := NewMemoryCache(10)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", "old", time.Minute))
	expiredAt := now.Add(2 * time.Minute)

	// un Set concurrente escribe una entrada nueva antes de que Get tome el lock de escritura
	now = expiredAt
	require.NoError(t, cache.Set(ctx, "a", "new", time.Minute))
	cache.expire("a", expiredAt)

	val, ok := cache.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, "new", val)
}
