package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"storefront/internal/cache"
)

func TestMemoryStoreSetAndGet(t *testing.T) {
	store := cache.NewMemoryStore()
	ctx := context.Background()

	_, found := store.TryGet(ctx, "missing")
	assert.False(t, found)

	store.Set(ctx, "key", []byte("value"), time.Minute)
	value, found := store.TryGet(ctx, "key")
	assert.True(t, found)
	assert.Equal(t, []byte("value"), value)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := cache.NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "key", []byte("value"), 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)

	_, found := store.TryGet(ctx, "key")
	assert.False(t, found)
}

func TestMemoryStoreRemove(t *testing.T) {
	store := cache.NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "key", []byte("value"), time.Minute)
	store.Remove(ctx, "key")

	_, found := store.TryGet(ctx, "key")
	assert.False(t, found)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := cache.NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "key", []byte("old"), time.Minute)
	store.Set(ctx, "key", []byte("new"), time.Minute)

	value, found := store.TryGet(ctx, "key")
	assert.True(t, found)
	assert.Equal(t, []byte("new"), value)
}
