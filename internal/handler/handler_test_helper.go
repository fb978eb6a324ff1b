// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/gau7ab/folio-go/internal/cache"
	"github.com/gau7ab/folio-go/internal/store"
)

// testDB creates a temporary migrated database for handler tests.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp("", "folio-handler-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := store.Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	return db, func() {
		db.Close()
		os.Remove(dbPath)
	}
}

// testCacheManager creates a memory-backed cache manager.
func testCacheManager(t *testing.T, db *sql.DB) *cache.Manager {
	t.Helper()

	backend := cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Hour, MaxSize: 1000})
	t.Cleanup(func() { _ = backend.Close() })
	return cache.NewManager(backend, store.New(db), time.Hour)
}
