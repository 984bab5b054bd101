// Package cache provides a small generic sharded LRU cache. varfont uses it
// to reuse parsed OpenType fonts across width-table derivations, but it has
// no font-specific behavior.
package cache

import (
	"hash/fnv"
	"sync"
)

// Default configuration constants.
const (
	// shardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	shardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 64

	// shardMask is used for fast shard selection (shardCount - 1).
	shardMask = shardCount - 1
)

// Hasher computes a hash for a key. It only selects the shard; key equality
// inside a shard is Go equality, so a weak hasher affects balance, never
// correctness.
type Hasher[K any] func(K) uint64

// StringHasher computes the FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// BytesHasher computes the FNV-1a hash of a byte-slice prefix. Hashing is
// capped at 64 bytes so large payloads (font files) stay cheap to key.
func BytesHasher(b []byte) uint64 {
	if len(b) > 64 {
		b = b[:64]
	}
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64()
}

// Uint64Hasher returns the key itself as the hash (identity hash).
func Uint64Hasher(u uint64) uint64 { return u }

// Cache is a thread-safe, sharded LRU cache. Shards have independent locks
// and evict their least recently used entries once the per-shard capacity
// is reached. Cache hits allocate nothing.
type Cache[K comparable, V any] struct {
	shards   [shardCount]*shard[K, V]
	hasher   Hasher[K]
	capacity int // per shard
}

// shard is a single shard of the cache with its own mutex.
type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*entry[K, V]
	lru     *lruList[K]
}

// entry holds a cached value with its LRU node.
type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates a cache with the given per-shard capacity (total capacity is
// roughly capacity * 16). If capacity <= 0, DefaultCapacity is used. The
// hasher selects the shard for a key; use StringHasher, BytesHasher, or
// Uint64Hasher for common key types.
func New[K comparable, V any](capacity int, hasher Hasher[K]) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache[K, V]{hasher: hasher, capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{
			entries: make(map[K]*entry[K, V]),
			lru:     newLRUList[K](),
		}
	}
	return c
}

func (c *Cache[K, V]) getShard(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get retrieves a cached value by key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	s := c.getShard(key)

	// Fast path: read lock to check existence.
	s.mu.RLock()
	_, exists := s.entries[key]
	s.mu.RUnlock()

	if !exists {
		var zero V
		return zero, false
	}

	// Write lock for the LRU update; re-check, the entry may have been
	// evicted in between.
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	s.lru.moveToFront(e.node)
	return e.value, true
}

// Set stores a value, evicting the oldest entries if the shard is full.
// The value is stored as-is, not copied.
func (c *Cache[K, V]) Set(key K, value V) {
	s := c.getShard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[key]; ok {
		existing.value = value
		s.lru.moveToFront(existing.node)
		return
	}
	s.evictFull(c.capacity)
	s.entries[key] = &entry[K, V]{value: value, node: s.lru.pushFront(key)}
}

// GetOrCreate returns the cached value for key, calling create to fill a
// miss. create runs with the shard lock held so concurrent callers of the
// same key compute it once; keep it fast or use Get/Set for slow fills.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	s := c.getShard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.lru.moveToFront(e.node)
		return e.value
	}
	value := create()
	s.evictFull(c.capacity)
	s.entries[key] = &entry[K, V]{value: value, node: s.lru.pushFront(key)}
	return value
}

// evictFull removes oldest entries until the shard is below capacity.
// Callers must hold the shard lock.
func (s *shard[K, V]) evictFull(capacity int) {
	for s.lru.len >= capacity {
		oldest, ok := s.lru.removeOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
	}
}

// Delete removes an entry, reporting whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	s := c.getShard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	s.lru.remove(e.node)
	delete(s.entries, key)
	return true
}

// Len returns the total number of entries across all shards.
func (c *Cache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *Cache[K, V]) Capacity() int { return c.capacity }
