package quiz

import (
	"sync"
	"time"
)

// Question is one generated quiz item. Immutable once generated; ids
// are ordinals within a batch, assigned after generation succeeds.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"question"`
	Options []string `json:"options"`
}

// Batch is the unit of caching: one generated question set per
// (category, count, UTC day).
type Batch struct {
	CacheKey    string     `json:"cache_key"`
	Questions   []Question `json:"questions"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// Cache stores generated batches. Keys embed the UTC date, so expiry
// is structural: yesterday's keys are simply never asked for again. An
// implementation may be in-process (below) or shared between
// instances; the service only depends on this interface.
type Cache interface {
	Get(key string) (Batch, bool)
	Put(key string, b Batch)
}

// MemoryCache is the single-instance Cache backed by a map.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]Batch
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]Batch)}
}

func (c *MemoryCache) Get(key string) (Batch, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.entries[key]
	return b, ok
}

func (c *MemoryCache) Put(key string, b Batch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Drop entries from previous days so the map never grows beyond a
	// day's worth of (category, count) combinations.
	for k, old := range c.entries {
		if b.GeneratedAt.Sub(old.GeneratedAt) > 48*time.Hour {
			delete(c.entries, k)
		}
	}
	c.entries[key] = b
}
