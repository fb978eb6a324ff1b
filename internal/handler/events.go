// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/gau7ab/folio-go/internal/store"
)

// EventsHandler serves the admin event log.
type EventsHandler struct {
	queries *store.Queries
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(db *sql.DB) *EventsHandler {
	return &EventsHandler{queries: store.New(db)}
}

// List handles GET /api/admin/events. Store failures degrade to an empty
// list.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseLimitParam(r, 100, 1000)
	events, err := h.queries.ListEvents(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list events", "error", err)
		writeJSON(w, []EventResponse{})
		return
	}
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	writeJSON(w, out)
}
