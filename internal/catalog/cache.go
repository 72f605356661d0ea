package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/dotworks/PixieBot_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when the cached data structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

const (
	defaultCacheSize = 512
	defaultCacheTTL  = 5 * time.Minute
)

// cachedItemEntry wraps an item with version metadata for cache invalidation
type cachedItemEntry struct {
	Version  string       `json:"version"`
	Item     *domain.Item `json:"item"`
	CachedAt time.Time    `json:"cached_at"`
}

// itemCache provides an in-memory LRU cache for item-definition lookups
// with time-based expiration. Definitions change rarely but are read on
// every purchase, gamble payout and craft.
type itemCache struct {
	lru *expirable.LRU[string, *cachedItemEntry]
}

func newItemCache(size int, ttl time.Duration) *itemCache {
	return &itemCache{
		lru: expirable.NewLRU[string, *cachedItemEntry](size, nil, ttl),
	}
}

// Get retrieves an item by name. Entries with a stale schema version are
// dropped on read.
func (c *itemCache) Get(name string) (*domain.Item, bool) {
	entry, found := c.lru.Get(name)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(name)
		return nil, false
	}
	return entry.Item, true
}

// Set stores an item under its name.
func (c *itemCache) Set(item *domain.Item) {
	c.lru.Add(item.Name, &cachedItemEntry{
		Version:  CacheSchemaVersion,
		Item:     item,
		CachedAt: time.Now(),
	})
}

// Invalidate removes one entry, for use after admin updates.
func (c *itemCache) Invalidate(name string) {
	c.lru.Remove(name)
}

// Clear removes all entries from the cache.
func (c *itemCache) Clear() {
	c.lru.Purge()
}
