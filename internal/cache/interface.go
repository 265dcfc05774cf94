package cache

import (
	"context"
	"time"
)

// Cache is a read-through cache for hot catalog lookups. Implementations
// must treat a miss and an unavailable backend the same way: found=false,
// nil error, so callers always fall back to the store.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

const (
	KeyCategories = "categories"
	KeyProduct    = "product:"
)

func ProductKey(id string) string {
	return KeyProduct + id
}
