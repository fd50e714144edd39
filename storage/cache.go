package storage

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"careeriq/models"
)

// SnapshotCache memoizes parsed raw exports keyed by content identity,
// so a changed file can never be served from a stale entry.
type SnapshotCache struct {
	mu      sync.RWMutex
	entries map[string][]models.RawListing

	hits   atomic.Int64
	misses atomic.Int64
}

// NewSnapshotCache creates an empty cache.
func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{entries: make(map[string][]models.RawListing)}
}

// ContentKey builds the cache key for a file's bytes read with a given profile.
func ContentKey(profile string, content []byte) string {
	return fmt.Sprintf("%s:%016x", profile, xxhash.Sum64(content))
}

// Get returns a copy of the cached rows.
func (c *SnapshotCache) Get(key string) ([]models.RawListing, bool) {
	c.mu.RLock()
	rows, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return slices.Clone(rows), true
}

// Put stores a copy of rows under key.
func (c *SnapshotCache) Put(key string, rows []models.RawListing) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = slices.Clone(rows)
}

// Delete drops an entry.
func (c *SnapshotCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of cached snapshots.
func (c *SnapshotCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns hit and miss counters.
func (c *SnapshotCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
