package agent

import (
	"sync"
	"time"

	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/model"
)

// StateCache holds the last known-good reading. It has exactly one writer,
// the scheduler's success path, and any number of readers. Read hands out the
// entry by value, so a reader can never observe a half-replaced pair.
type StateCache struct {
	mu    sync.RWMutex
	entry model.CacheEntry
}

// NewStateCache returns a cache holding the boot sentinel: a zero reading
// that has never been updated.
func NewStateCache() *StateCache {
	return &StateCache{}
}

// Read returns a snapshot of the current entry. It never fails; before the
// first successful acquisition it returns the sentinel.
func (c *StateCache) Read() model.CacheEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entry
}

// Store replaces the reading and its update time as one unit. Only the
// scheduler's success path calls it; failed acquisitions never reach here.
func (c *StateCache) Store(r model.Reading, at time.Time) {
	c.mu.Lock()
	c.entry = model.CacheEntry{Reading: r, UpdatedAt: at}
	c.mu.Unlock()
}
