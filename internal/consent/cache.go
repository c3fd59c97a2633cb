// Package consent caches owner consent lookups in front of the consent store.
package consent

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"creator_sync/internal/metrics"
)

// Source answers consent lookups, typically the Postgres consent store.
type Source interface {
	HasConsent(ctx context.Context, ownerID string) (bool, error)
}

// Cache is an LRU of consent answers with a TTL. Failed lookups are not cached.
type Cache struct {
	source Source
	cache  *expirable.LRU[string, bool]
}

func NewCache(source Source, size int, ttl time.Duration) *Cache {
	return &Cache{
		source: source,
		cache:  expirable.NewLRU[string, bool](size, nil, ttl),
	}
}

func (c *Cache) HasConsent(ctx context.Context, ownerID string) (bool, error) {
	if granted, ok := c.cache.Get(ownerID); ok {
		metrics.ConsentCacheLookups.WithLabelValues("hit").Inc()
		return granted, nil
	}
	metrics.ConsentCacheLookups.WithLabelValues("miss").Inc()

	granted, err := c.source.HasConsent(ctx, ownerID)
	if err != nil {
		return false, err
	}
	c.cache.Add(ownerID, granted)
	return granted, nil
}

// Invalidate drops the cached answer for ownerID.
func (c *Cache) Invalidate(ownerID string) {
	c.cache.Remove(ownerID)
}
