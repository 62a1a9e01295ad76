package backend

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheItem wraps a cached value with its expiry.
type cacheItem[T any] struct {
	value     T
	expiresAt time.Time
}

// ttlCache is a bounded LRU whose entries also expire after a fixed TTL.
// The underlying lru.Cache is safe for concurrent use.
type ttlCache[T any] struct {
	storage *lru.Cache[string, cacheItem[T]]
	ttl     time.Duration
}

func newTTLCache[T any](size int, ttl time.Duration) *ttlCache[T] {
	c, _ := lru.New[string, cacheItem[T]](size)
	return &ttlCache[T]{storage: c, ttl: ttl}
}

func (c *ttlCache[T]) Get(key string) (T, bool) {
	var zero T
	item, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}
	if time.Now().After(item.expiresAt) {
		c.storage.Remove(key)
		return zero, false
	}
	return item.value, true
}

func (c *ttlCache[T]) Set(key string, value T) {
	c.storage.Add(key, cacheItem[T]{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	})
}
