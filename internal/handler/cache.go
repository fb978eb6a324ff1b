// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/gau7ab/folio-go/internal/cache"
)

// CacheHandler exposes cache statistics and manual invalidation to the
// admin.
type CacheHandler struct {
	cacheManager *cache.Manager
}

// NewCacheHandler creates a new CacheHandler.
func NewCacheHandler(cm *cache.Manager) *CacheHandler {
	return &CacheHandler{cacheManager: cm}
}

// Stats handles GET /api/admin/cache/stats.
func (h *CacheHandler) Stats(w http.ResponseWriter, _ *http.Request) {
	writeJSONSuccess(w, map[string]any{"stats": h.cacheManager.Stats()})
}

// Clear handles POST /api/admin/cache/clear, dropping every cached entry.
func (h *CacheHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cacheManager.ClearAll(r.Context())
	slog.Info("cache cleared by admin", "category", "cache")
	writeJSONSuccess(w, nil)
}
