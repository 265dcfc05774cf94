package cache_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/marketverse/storefront/internal/cache"
	"github.com/marketverse/storefront/internal/config"
	"github.com/marketverse/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCacheWithMock(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{DefaultTTL: 5 * time.Minute}

	return cache.NewRedisCache(client, cfg), mock
}

func TestRedisCache_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Hit - Unmarshals Cached Product", func(t *testing.T) {
		c, mock := newCacheWithMock(t)

		product := models.Product{ID: "p1", Title: "Mug", Price: 9.99}
		data, err := json.Marshal(product)
		require.NoError(t, err)

		mock.ExpectGet(cache.ProductKey("p1")).SetVal(string(data))

		var got models.Product
		found, err := c.Get(ctx, cache.ProductKey("p1"), &got)

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Mug", got.Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss - Nil Reply Is Not An Error", func(t *testing.T) {
		c, mock := newCacheWithMock(t)

		mock.ExpectGet(cache.ProductKey("p1")).RedisNil()

		var got models.Product
		found, err := c.Get(ctx, cache.ProductKey("p1"), &got)

		assert.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Corrupt Payload", func(t *testing.T) {
		c, mock := newCacheWithMock(t)

		mock.ExpectGet("categories").SetVal("not json")

		var got []string
		found, err := c.Get(ctx, "categories", &got)

		assert.Error(t, err)
		assert.False(t, found)
	})
}

func TestRedisCache_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Zero TTL Falls Back To Default", func(t *testing.T) {
		c, mock := newCacheWithMock(t)

		categories := []string{"Home", "Office"}
		data, err := json.Marshal(categories)
		require.NoError(t, err)

		mock.ExpectSet(cache.KeyCategories, data, 5*time.Minute).SetVal("OK")

		assert.NoError(t, c.Set(ctx, cache.KeyCategories, categories, 0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Explicit TTL Wins", func(t *testing.T) {
		c, mock := newCacheWithMock(t)

		data, err := json.Marshal("v")
		require.NoError(t, err)

		mock.ExpectSet("k", data, time.Minute).SetVal("OK")

		assert.NoError(t, c.Set(ctx, "k", "v", time.Minute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCache_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Deletes Multiple Keys", func(t *testing.T) {
		c, mock := newCacheWithMock(t)

		mock.ExpectDel(cache.ProductKey("p1"), cache.KeyCategories).SetVal(2)

		assert.NoError(t, c.Delete(ctx, cache.ProductKey("p1"), cache.KeyCategories))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No Keys Is A No-Op", func(t *testing.T) {
		c, mock := newCacheWithMock(t)

		assert.NoError(t, c.Delete(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewNoopCache()

	var got models.Product
	found, err := c.Get(ctx, "any", &got)

	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Set(ctx, "any", got, time.Minute))
	assert.NoError(t, c.Delete(ctx, "any"))
	assert.NoError(t, c.Close())
}
