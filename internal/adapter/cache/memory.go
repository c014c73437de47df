package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/krishn404/RepOSS/internal/domain"
)

const (
	// DefaultTTL keeps a shortlist warm for 18 hours (between the 12-24
	// hour window the product wants).
	DefaultTTL = 18 * time.Hour

	// maxEntries bounds memory; one entry per (identity, username) pair.
	maxEntries = 1024
)

// PickCache implements port.PickCache with an in-process expirable LRU.
// Entries are idempotent derived data, so a concurrent
// read-compute-write race is fine: last write wins.
type PickCache struct {
	lru *expirable.LRU[string, []domain.ContributionPick]
}

// NewPickCache creates a cache whose entries expire after ttl.
// A non-positive ttl falls back to DefaultTTL.
func NewPickCache(ttl time.Duration) *PickCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PickCache{
		lru: expirable.NewLRU[string, []domain.ContributionPick](maxEntries, nil, ttl),
	}
}

// Get returns the cached shortlist for key, if present and unexpired.
func (c *PickCache) Get(key string) ([]domain.ContributionPick, bool) {
	return c.lru.Get(key)
}

// Set stores the shortlist under key with the cache's fixed TTL.
func (c *PickCache) Set(key string, picks []domain.ContributionPick) {
	c.lru.Add(key, picks)
}

// Len reports how many entries are currently cached.
func (c *PickCache) Len() int {
	return c.lru.Len()
}
