package hashing

import (
	"sync"

	"github.com/lgbarn/chesscore/internal/chess"
)

// perftKey identifies a perft subtree: the same position searched to the
// same remaining depth always has the same node count.
type perftKey struct {
	hash  uint64
	depth int
}

// PerftCache memoises perft node counts by position and depth. It is safe
// for concurrent use by multiple workers.
type PerftCache struct {
	mu          sync.RWMutex
	entries     map[perftKey]uint64
	maxCapacity int
	hits        uint64
}

// NewPerftCache creates a cache. maxCapacity of 0 means unlimited capacity.
func NewPerftCache(maxCapacity int) *PerftCache {
	return &PerftCache{
		entries:     make(map[perftKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored node count for pos at depth.
func (c *PerftCache) Lookup(pos chess.Position, depth int) (uint64, bool) {
	key := perftKey{hash: Zobrist(pos), depth: depth}

	c.mu.RLock()
	nodes, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
	}
	return nodes, ok
}

// Store records the node count for pos at depth. Once the cache is full
// new entries are dropped.
func (c *PerftCache) Store(pos chess.Position, depth int, nodes uint64) {
	key := perftKey{hash: Zobrist(pos), depth: depth}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isFullLocked() {
		if _, exists := c.entries[key]; !exists {
			return
		}
	}
	c.entries[key] = nodes
}

// Len returns the number of cached entries.
func (c *PerftCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Hits returns how many lookups found an entry.
func (c *PerftCache) Hits() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isFullLocked()
}

func (c *PerftCache) isFullLocked() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}
