// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gau7ab/folio-go/internal/store"
)

// ConfigCache provides cached access to site configuration. All entries
// are loaded in one query and served from memory until invalidated or the
// TTL passes.
type ConfigCache struct {
	queries *store.Queries
	ttl     time.Duration

	mu        sync.RWMutex
	loaded    bool
	loadedAt  time.Time
	allConfig map[string]store.ConfigEntry

	hits   atomic.Int64
	misses atomic.Int64
}

// NewConfigCache creates a new config cache.
func NewConfigCache(queries *store.Queries, ttl time.Duration) *ConfigCache {
	return &ConfigCache{
		queries:   queries,
		ttl:       ttl,
		allConfig: make(map[string]store.ConfigEntry),
	}
}

// Get retrieves a config value by key. Returns an empty string when the
// key is absent.
func (c *ConfigCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	if c.fresh() {
		cfg, ok := c.allConfig[key]
		c.mu.RUnlock()
		c.record(ok)
		return cfg.Value, nil
	}
	c.mu.RUnlock()

	if err := c.loadAll(ctx); err != nil {
		return "", err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	cfg, ok := c.allConfig[key]
	c.record(ok)
	return cfg.Value, nil
}

// Invalidate drops the cached config so the next read reloads it.
func (c *ConfigCache) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.allConfig = make(map[string]store.ConfigEntry)
	c.mu.Unlock()
}

// Stats returns hit/miss counters for the config cache.
func (c *ConfigCache) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	total := hits + misses

	var hitRate float64
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}

	c.mu.RLock()
	items := len(c.allConfig)
	c.mu.RUnlock()

	return Stats{Hits: hits, Misses: misses, Items: items, HitRate: hitRate}
}

// fresh reports whether the loaded config is still usable. Caller must
// hold at least a read lock.
func (c *ConfigCache) fresh() bool {
	return c.loaded && (c.ttl <= 0 || time.Since(c.loadedAt) < c.ttl)
}

func (c *ConfigCache) record(hit bool) {
	if hit {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
}

func (c *ConfigCache) loadAll(ctx context.Context) error {
	entries, err := c.queries.ListConfig(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.allConfig = make(map[string]store.ConfigEntry, len(entries))
	for _, e := range entries {
		c.allConfig[e.Key] = e
	}
	c.loaded = true
	c.loadedAt = time.Now()
	return nil
}
