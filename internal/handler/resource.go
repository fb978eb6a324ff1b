// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gau7ab/folio-go/internal/cache"
)

// ResourceOps binds one content collection's store operations into the
// uniform admin CRUD surface. P is the decoded request payload, T the
// persisted record returned to the caller.
type ResourceOps[P, T any] struct {
	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, payload P) (T, error)
	// Update reports rows affected so a missing id maps to 404 instead
	// of a silent success.
	Update   func(ctx context.Context, id int64, payload P) (int64, error)
	Delete   func(ctx context.Context, id int64) error
	Validate func(payload *P) error
}

// ResourceHandler serves one /api/admin/<name> collection with the shared
// list/create/update/delete contract.
type ResourceHandler[P, T any] struct {
	name         string
	ops          ResourceOps[P, T]
	cacheManager *cache.Manager
}

// NewResourceHandler creates a handler for one named collection.
func NewResourceHandler[P, T any](name string, ops ResourceOps[P, T], cm *cache.Manager) *ResourceHandler[P, T] {
	return &ResourceHandler[P, T]{name: name, ops: ops, cacheManager: cm}
}

// Mount registers the collection's routes. Update and delete accept the
// id either as a path segment or as an id query parameter.
func (h *ResourceHandler[P, T]) Mount(r chi.Router) {
	r.Route("/"+h.name, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/", h.Update)
		r.Put("/{id}", h.Update)
		r.Delete("/", h.Delete)
		r.Delete("/{id}", h.Delete)
	})
}

// List returns every record in the collection. Store failures degrade to
// an empty list so callers keep rendering during a database outage.
func (h *ResourceHandler[P, T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ops.List(r.Context())
	if err != nil {
		slog.Error("failed to list records", "resource", h.name, "error", err)
		writeJSON(w, []T{})
		return
	}
	if items == nil {
		items = []T{}
	}
	writeJSON(w, items)
}

// Create validates the payload and inserts a new record, returning the
// persisted record with its assigned id.
func (h *ResourceHandler[P, T]) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}
	item, err := h.ops.Create(r.Context(), payload)
	if err != nil {
		slog.Error("failed to create record", "resource", h.name, "error", err)
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to create %s", h.name))
		return
	}
	h.cacheManager.InvalidateSnapshot(r.Context())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(item)
}

// Update replaces the record's fields. A nonexistent id is a 404 and
// leaves the collection unchanged.
func (h *ResourceHandler[P, T]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid ID")
		return
	}
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}
	affected, err := h.ops.Update(r.Context(), id, payload)
	if err != nil {
		slog.Error("failed to update record", "resource", h.name, "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to update %s", h.name))
		return
	}
	if affected == 0 {
		writeJSONError(w, http.StatusNotFound, "Not found")
		return
	}
	h.cacheManager.InvalidateSnapshot(r.Context())
	writeJSONSuccess(w, map[string]any{"id": id})
}

// Delete removes the record. Deleting an id that does not exist is not an
// error; the id is echoed back either way.
func (h *ResourceHandler[P, T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid ID")
		return
	}
	if err := h.ops.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete record", "resource", h.name, "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to delete %s", h.name))
		return
	}
	h.cacheManager.InvalidateSnapshot(r.Context())
	writeJSONSuccess(w, map[string]any{"id": id})
}

func (h *ResourceHandler[P, T]) decodePayload(w http.ResponseWriter, r *http.Request) (P, bool) {
	var payload P
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return payload, false
	}
	if h.ops.Validate != nil {
		if err := h.ops.Validate(&payload); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return payload, false
		}
	}
	return payload, true
}
