package guard

import (
	"context"
	"sync"
	"time"
)

type cacheEntry struct {
	value        string
	createdAt    time.Time
	expiresAt    time.Time
	lastAccessed time.Time
}

// Cache is an in-memory key-value store with per-entry TTL and LRU
// eviction at capacity. Expiry is lazy: an expired entry is treated as
// absent and removed on access, which alone guarantees stale data is
// never served. The background sweep only reclaims memory under sparse
// access patterns.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*cacheEntry
	defaultTTL time.Duration
	capacity   int

	now func() time.Time // test hook
}

// Stats is a point-in-time view of cache occupancy. Observability only.
type Stats struct {
	Total       int
	Valid       int
	Expired     int
	Capacity    int
	Utilization float64
}

// NewCache creates a cache with the given default TTL and capacity.
func NewCache(defaultTTL time.Duration, capacity int) *Cache {
	return &Cache{
		entries:    make(map[string]*cacheEntry),
		defaultTTL: defaultTTL,
		capacity:   capacity,
		now:        time.Now,
	}
}

// Get returns the value for key if present and unexpired. Expired
// entries are evicted on access. A hit refreshes the entry's LRU
// position.
func (c *Cache) Get(key string) (string, bool) {
	k := NormalizeKey(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[k]
	if !ok {
		return "", false
	}

	now := c.now()
	if now.After(e.expiresAt) {
		delete(c.entries, k)
		return "", false
	}

	e.lastAccessed = now
	return e.value, true
}

// Set stores value under key. A non-positive ttl selects the store-wide
// default. Inserting a new key into a full cache evicts the entry with
// the oldest last access.
func (c *Cache) Set(key, value string, ttl time.Duration) {
	k := NormalizeKey(key)
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	if _, exists := c.entries[k]; !exists && len(c.entries) >= c.capacity {
		c.evictLRU()
	}

	c.entries[k] = &cacheEntry{
		value:        value,
		createdAt:    now,
		expiresAt:    now.Add(ttl),
		lastAccessed: now,
	}
}

// evictLRU removes the single entry with the oldest lastAccessed.
// O(n) scan; fine at the cache sizes this serves. Caller holds the lock.
func (c *Cache) evictLRU() {
	var oldestKey string
	var oldestTime time.Time
	first := true

	for k, e := range c.entries {
		if first || e.lastAccessed.Before(oldestTime) {
			oldestKey = k
			oldestTime = e.lastAccessed
			first = false
		}
	}

	if !first {
		delete(c.entries, oldestKey)
	}
}

// Sweep removes every expired entry and returns how many were removed.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// StartSweep runs Sweep every interval until ctx is cancelled.
func (c *Cache) StartSweep(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Sweep()
			}
		}
	}()
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// Stats reports occupancy counts.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	s := Stats{Total: len(c.entries), Capacity: c.capacity}
	for _, e := range c.entries {
		if now.After(e.expiresAt) {
			s.Expired++
		} else {
			s.Valid++
		}
	}
	if c.capacity > 0 {
		s.Utilization = float64(s.Total) / float64(c.capacity)
	}
	return s
}
