package profile

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CoinQuest_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// CacheConfig sizes the profile cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache sizing
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type cachedProfileEntry struct {
	Version  string
	Profile  domain.Profile
	CachedAt time.Time
}

// profileCache is a read-only copy of profiles keyed by auth id.
// Entries are dropped whenever the wallet changes.
//
// generation advances on every invalidation. A loader records it before
// reading the database and only stores its row if no invalidation happened
// in between, so a slow read cannot put back a profile that a mutation
// already replaced.
type profileCache struct {
	mu         sync.Mutex
	generation uint64
	lru        *expirable.LRU[string, *cachedProfileEntry]
	hits       atomic.Int64
	misses     atomic.Int64
}

func newProfileCache(cfg CacheConfig) *profileCache {
	return &profileCache{
		lru: expirable.NewLRU[string, *cachedProfileEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns a copy so callers cannot mutate the cached value
func (c *profileCache) Get(authID string) (*domain.Profile, bool) {
	entry, found := c.lru.Get(authID)
	if !found || entry.Version != CacheSchemaVersion {
		if found {
			c.lru.Remove(authID)
		}
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	p := entry.Profile
	return &p, true
}

// Generation is read before loading a profile from the database
func (c *profileCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// SetIfCurrent stores p unless the cache was invalidated after gen was taken.
// It reports whether the entry was stored.
func (c *profileCache) SetIfCurrent(p *domain.Profile, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		return false
	}
	c.lru.Add(p.AuthID, &cachedProfileEntry{
		Version:  CacheSchemaVersion,
		Profile:  *p,
		CachedAt: time.Now(),
	})
	return true
}

func (c *profileCache) Invalidate(authID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.lru.Remove(authID)
}

// Purge drops every entry, used after bulk updates that touch many profiles
func (c *profileCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.lru.Purge()
}

func (c *profileCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
