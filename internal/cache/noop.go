package cache

import (
	"context"
	"time"
)

// noopCache is used when no redis address is configured; every lookup is a
// miss and writes are discarded.
type noopCache struct{}

func NewNoopCache() Cache {
	return noopCache{}
}

func (noopCache) Get(ctx context.Context, key string, value any) (bool, error) { return false, nil }

func (noopCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}

func (noopCache) Delete(ctx context.Context, keys ...string) error { return nil }

func (noopCache) Close() error { return nil }
