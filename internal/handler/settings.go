// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gau7ab/folio-go/internal/cache"
	"github.com/gau7ab/folio-go/internal/store"
)

// SettingsHandler manages the site settings key/value table.
type SettingsHandler struct {
	queries      *store.Queries
	cacheManager *cache.Manager
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(db *sql.DB, cm *cache.Manager) *SettingsHandler {
	return &SettingsHandler{queries: store.New(db), cacheManager: cm}
}

// Get handles GET /api/admin/settings and returns all settings as a flat map.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	entries, err := h.queries.ListConfig(r.Context())
	if err != nil {
		slog.Error("failed to list settings", "error", err)
		entries = nil
	}

	settings := make(map[string]string, len(entries))
	for _, e := range entries {
		settings[e.Key] = e.Value
	}
	writeJSON(w, settings)
}

// Update handles PUT /api/admin/settings. The body is a flat map of keys to
// values; keys not present in the body are untouched.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var settings map[string]string
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	for key, value := range settings {
		key = strings.TrimSpace(key)
		if key == "" {
			writeJSONError(w, http.StatusBadRequest, "Setting keys must not be empty")
			return
		}
		if err := h.queries.SetConfig(r.Context(), key, value); err != nil {
			slog.Error("failed to save setting", "key", key, "error", err)
			writeJSONError(w, http.StatusInternalServerError, "Failed to save settings")
			return
		}
	}

	// Settings feed the snapshot's meta block, so both caches go.
	h.cacheManager.InvalidateContent(r.Context())
	writeJSONSuccess(w, nil)
}
