// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gau7ab/folio-go/internal/cache"
	"github.com/gau7ab/folio-go/internal/service"
)

// PortfolioHandler serves the public aggregate portfolio endpoint.
type PortfolioHandler struct {
	snapshot     *service.SnapshotService
	cacheManager *cache.Manager
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(snapshot *service.SnapshotService, cm *cache.Manager) *PortfolioHandler {
	return &PortfolioHandler{snapshot: snapshot, cacheManager: cm}
}

// Get handles GET /api/portfolio. The rendered snapshot is cached until a
// content mutation invalidates it; a cold cache rebuilds from the store.
func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if data, err := h.cacheManager.GetSnapshot(ctx); err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		_, _ = w.Write(data)
		return
	}

	snap := h.snapshot.Build(ctx)
	snap.Meta = h.siteMeta(ctx)

	data, err := json.Marshal(snap)
	if err != nil {
		slog.Error("failed to build portfolio snapshot", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load portfolio")
		return
	}

	if err := h.cacheManager.SetSnapshot(ctx, data); err != nil {
		slog.Warn("failed to cache portfolio snapshot", "error", err, "category", "cache")
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	_, _ = w.Write(data)
}

// siteMetaKeys are the config entries exposed in the snapshot's meta block.
var siteMetaKeys = []string{"site_title", "site_tagline", "site_url", "social_github", "social_linkedin"}

// siteMeta collects the site settings for the snapshot, skipping empty ones.
func (h *PortfolioHandler) siteMeta(ctx context.Context) map[string]string {
	meta := make(map[string]string, len(siteMetaKeys))
	for _, key := range siteMetaKeys {
		if v, err := h.cacheManager.GetConfig(ctx, key); err == nil && v != "" {
			meta[key] = v
		}
	}
	return meta
}
