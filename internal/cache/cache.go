package cache

import (
	"context"
	"time"
)

// Store is the cache collaborator used for cache-aside reads. Values are
// opaque bytes (the services store JSON-encoded pages). A Store is shared by
// every in-flight request and must be safe for concurrent use.
//
// Stores are best-effort: a backend fault degrades to a miss and never fails
// the request, so a miss always falls through to the source of truth.
type Store interface {
	TryGet(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Remove(ctx context.Context, key string)
}
