// Package resultcache provides an LRU-backed implementation of the lookup
// service's ResultCache.
package resultcache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/haukened/regdom/internal/regdom/services/lookup"
)

// resultCache is an LRU cache of canonical hostname to lookup result.
// It tracks basic metrics: hits, misses, and evictions.
type resultCache struct {
	lru       *lru.Cache[string, lookup.Result]
	hits      uint64
	misses    uint64
	evictions uint64
}

// disabledCache is a no-op ResultCache used when size <= 0.
type disabledCache struct{}

// New creates a new ResultCache with the given capacity. If size <= 0, a
// disabled no-op cache is returned that always misses and tracks no
// metrics.
func New(size int) (lookup.ResultCache, error) {
	if size <= 0 {
		return &disabledCache{}, nil
	}

	var rc resultCache
	// NewWithEvict observes evictions, including Purge-induced ones.
	cache, err := lru.NewWithEvict(size, func(_ string, _ lookup.Result) {
		atomic.AddUint64(&rc.evictions, 1)
	})
	if err != nil {
		return nil, err
	}
	rc.lru = cache
	return &rc, nil
}

// Get looks up a result by canonical hostname, counting hits and misses.
func (c *resultCache) Get(name string) (lookup.Result, bool) {
	if val, ok := c.lru.Get(name); ok {
		atomic.AddUint64(&c.hits, 1)
		return val, true
	}
	atomic.AddUint64(&c.misses, 1)
	var zero lookup.Result
	return zero, false
}

// Put stores a result by canonical hostname.
func (c *resultCache) Put(name string, r lookup.Result) {
	c.lru.Add(name, r)
}

// Len returns the number of entries in the cache.
func (c *resultCache) Len() int { return c.lru.Len() }

// Purge clears all entries. Evictions are counted via the eviction callback.
func (c *resultCache) Purge() { c.lru.Purge() }

// Stats returns cumulative hit/miss/eviction counters.
func (c *resultCache) Stats() (hits, misses, evictions uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses), atomic.LoadUint64(&c.evictions)
}

func (d *disabledCache) Get(string) (lookup.Result, bool) {
	var zero lookup.Result
	return zero, false
}

func (d *disabledCache) Put(string, lookup.Result) {}

func (d *disabledCache) Len() int { return 0 }

func (d *disabledCache) Purge() {}

func (d *disabledCache) Stats() (uint64, uint64, uint64) { return 0, 0, 0 }

var _ lookup.ResultCache = (*resultCache)(nil)
var _ lookup.ResultCache = (*disabledCache)(nil)
