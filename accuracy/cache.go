package accuracy

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheCapacity is the recommended bound for the two hot-path caches
// (§5: "recommended bound of ~10000 entries with LRU or any reasonable
// eviction; correctness is unaffected by eviction, only speed").
const cacheCapacity = 10000

// memoCache is a small typed wrapper around the LRU cache shared by
// distance() and align(). Both caches have process lifetime and are never
// invalidated by Part mutation, since Parts are value objects: two Parts
// that compare equal by (Line, Start, Text) always produce the same
// result.
type memoCache[K comparable, V any] struct {
	inner *lru.Cache[K, V]
}

func newMemoCache[K comparable, V any](capacity int) *memoCache[K, V] {
	c, err := lru.New[K, V](capacity)
	if err != nil {
		// Only returns an error for a non-positive size, which never
		// happens with the package-level constant above.
		panic(err)
	}
	return &memoCache[K, V]{inner: c}
}

func (c *memoCache[K, V]) get(key K) (V, bool) {
	return c.inner.Get(key)
}

func (c *memoCache[K, V]) put(key K, value V) {
	c.inner.Add(key, value)
}

var (
	distanceCache = newMemoCache[distanceKey, Match](cacheCapacity)
	alignCache    = newMemoCache[alignKey, *Match](cacheCapacity)
)

// ResetCaches clears both memoization caches. Exposed for tests and for
// long-running hosts (e.g. a batch CLI processing many unrelated document
// pairs) that want to bound cross-run memory without restarting the
// process; correctness never depends on calling it.
func ResetCaches() {
	distanceCache.inner.Purge()
	alignCache.inner.Purge()
}
