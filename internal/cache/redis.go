package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Store backed by Redis, for deployments where multiple
// instances must share cache contents. Backend faults are logged and treated
// as misses.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new instance of RedisStore.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// TryGet returns the cached value if present.
func (s *RedisStore) TryGet(ctx context.Context, key string) ([]byte, bool) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("redis get %s failed: %v", key, err)
		}
		return nil, false
	}
	return value, true
}

// Set stores a value with a TTL.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("redis set %s failed: %v", key, err)
	}
}

// Remove drops a key.
func (s *RedisStore) Remove(ctx context.Context, key string) {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		log.Printf("redis del %s failed: %v", key, err)
	}
}
