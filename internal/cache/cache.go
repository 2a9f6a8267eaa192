// Package cache provides a small memoizing cache for parse results.
//
// The cache is a random-replacement map guarded by an RWMutex. It memoizes
// only successful computations; a fill function that returns an error leaves
// the cache untouched, so failing inputs are re-evaluated on every call.
package cache

import "sync"

// DefaultSize is the maximum entry count used when no size is configured.
const DefaultSize = 1 << 10

// Cache memoizes the results of an expensive, pure computation.
//
// Its zero value is ready to use and safe for concurrent access. Under a
// racing fill the computation may run more than once, but only one result is
// ever stored per key.
type Cache[K comparable, V any] struct {
	// MaxSize is the maximum number of entries. Zero means DefaultSize.
	// MaxSize must not be mutated concurrently with calls to Get.
	MaxSize int

	mu sync.RWMutex
	m  map[K]V
}

// Get returns the value for k, calling fill to compute it on a miss. When
// fill returns an error, the error is returned and nothing is cached.
func (c *Cache[K, V]) Get(k K, fill func(K) (V, error)) (V, error) {
	c.mu.RLock()
	if v, ok := c.m[k]; ok {
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	nv, err := fill(k)
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.m[k]; ok {
		// Another goroutine filled the entry in the meantime; keep its
		// result so callers observe a single stored value per key.
		return v, nil
	}
	if c.m == nil {
		c.m = make(map[K]V)
	}
	c.m[k] = nv
	for old := range c.m {
		if len(c.m) <= c.maxSize() {
			break
		}
		if old != k {
			delete(c.m, old)
		}
	}
	return nv, nil
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Flush removes all entries from the cache.
func (c *Cache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
}

func (c *Cache[K, V]) maxSize() int {
	if c.MaxSize == 0 {
		return DefaultSize
	}
	return c.MaxSize
}
