// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/gau7ab/folio-go/internal/store"
)

// SnapshotKey is the backend key holding the rendered portfolio snapshot.
const SnapshotKey = "portfolio:snapshot"

// Manager owns the cache backend and the typed caches built on it.
type Manager struct {
	Backend Cacher
	Config  *ConfigCache

	snapshotTTL time.Duration
}

// NewManager creates a cache manager over the given backend.
func NewManager(backend Cacher, queries *store.Queries, snapshotTTL time.Duration) *Manager {
	if snapshotTTL <= 0 {
		snapshotTTL = time.Hour
	}
	return &Manager{
		Backend:     backend,
		Config:      NewConfigCache(queries, 5*time.Minute),
		snapshotTTL: snapshotTTL,
	}
}

// GetSnapshot returns the cached portfolio snapshot, or ErrCacheMiss.
func (m *Manager) GetSnapshot(ctx context.Context) ([]byte, error) {
	return m.Backend.Get(ctx, SnapshotKey)
}

// SetSnapshot stores the rendered portfolio snapshot.
func (m *Manager) SetSnapshot(ctx context.Context, data []byte) error {
	return m.Backend.Set(ctx, SnapshotKey, data, m.snapshotTTL)
}

// InvalidateSnapshot drops the cached snapshot. Called after every
// successful admin mutation so the public endpoint never serves stale
// content past the write.
func (m *Manager) InvalidateSnapshot(ctx context.Context) {
	if err := m.Backend.Delete(ctx, SnapshotKey); err != nil {
		slog.Warn("failed to invalidate snapshot cache", "error", err)
	}
}

// InvalidateContent drops all content-derived caches.
func (m *Manager) InvalidateContent(ctx context.Context) {
	m.InvalidateSnapshot(ctx)
	m.Config.Invalidate()
}

// GetConfig is a convenience method to get a config value.
func (m *Manager) GetConfig(ctx context.Context, key string) (string, error) {
	return m.Config.Get(ctx, key)
}

// ClearAll clears the backend and resets statistics.
func (m *Manager) ClearAll(ctx context.Context) {
	if err := m.Backend.Clear(ctx); err != nil {
		slog.Warn("failed to clear cache backend", "error", err)
	}
	m.Config.Invalidate()

	if sp, ok := m.Backend.(StatsProvider); ok {
		sp.ResetStats()
	}
	slog.Info("caches cleared")
}

// Stats returns backend statistics when the backend provides them.
func (m *Manager) Stats() Stats {
	if sp, ok := m.Backend.(StatsProvider); ok {
		return sp.Stats()
	}
	return Stats{}
}

// Close releases the backend.
func (m *Manager) Close() error {
	return m.Backend.Close()
}
