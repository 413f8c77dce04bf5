package save

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedStore fronts another store with an expiring in-memory copy of
// recently used slots. Writes go through to the backing store first.
type CachedStore struct {
	next Store
	lru  *expirable.LRU[string, []byte]
}

// NewCachedStore wraps next with a cache of size slots kept for ttl
func NewCachedStore(next Store, size int, ttl time.Duration) *CachedStore {
	return &CachedStore{
		next: next,
		lru:  expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

// Put writes through and refreshes the cached copy
func (c *CachedStore) Put(ctx context.Context, slot string, data []byte) error {
	if err := c.next.Put(ctx, slot, data); err != nil {
		c.lru.Remove(slot)
		return err
	}
	c.lru.Add(slot, append([]byte(nil), data...))
	return nil
}

// Get serves from the cache when possible
func (c *CachedStore) Get(ctx context.Context, slot string) ([]byte, error) {
	if data, ok := c.lru.Get(slot); ok {
		return append([]byte(nil), data...), nil
	}
	data, err := c.next.Get(ctx, slot)
	if err != nil {
		return nil, err
	}
	c.lru.Add(slot, append([]byte(nil), data...))
	return data, nil
}

