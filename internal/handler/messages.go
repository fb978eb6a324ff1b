// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gau7ab/folio-go/internal/store"
)

// MessagesHandler serves the admin contact inbox.
type MessagesHandler struct {
	queries *store.Queries
}

// NewMessagesHandler creates a new MessagesHandler.
func NewMessagesHandler(db *sql.DB) *MessagesHandler {
	return &MessagesHandler{queries: store.New(db)}
}

// Mount registers the inbox routes on the given admin router.
func (h *MessagesHandler) Mount(r chi.Router) {
	r.Route("/messages", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/unread", h.UnreadCount)
		r.Get("/{id}", h.Get)
		r.Put("/{id}/read", h.MarkRead)
		r.Delete("/", h.Delete)
		r.Delete("/{id}", h.Delete)
	})
}

// List returns all messages, newest first. Store failures degrade to an
// empty list.
func (h *MessagesHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.queries.ListMessages(r.Context())
	if err != nil {
		slog.Error("failed to list messages", "error", err, "category", "contact")
		writeJSON(w, []MessageResponse{})
		return
	}
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toMessageResponse(m))
	}
	writeJSON(w, out)
}

// UnreadCount returns the number of unread messages.
func (h *MessagesHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.queries.CountUnreadMessages(r.Context())
	if err != nil {
		slog.Error("failed to count unread messages", "error", err, "category", "contact")
		count = 0
	}
	writeJSONSuccess(w, map[string]any{"count": count})
}

// Get returns a single message by id.
func (h *MessagesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid ID")
		return
	}
	msg, err := h.queries.GetMessage(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Not found")
			return
		}
		slog.Error("failed to get message", "error", err, "id", id, "category", "contact")
		writeJSONError(w, http.StatusInternalServerError, "Failed to get message")
		return
	}
	writeJSON(w, toMessageResponse(msg))
}

// MarkRead flags a message as read.
func (h *MessagesHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid ID")
		return
	}
	affected, err := h.queries.MarkMessageRead(r.Context(), id)
	if err != nil {
		slog.Error("failed to mark message read", "error", err, "id", id, "category", "contact")
		writeJSONError(w, http.StatusInternalServerError, "Failed to update message")
		return
	}
	if affected == 0 {
		writeJSONError(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSONSuccess(w, map[string]any{"id": id})
}

// Delete removes a message. Deleting a nonexistent id is not an error.
func (h *MessagesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid ID")
		return
	}
	if err := h.queries.DeleteMessage(r.Context(), id); err != nil {
		slog.Error("failed to delete message", "error", err, "id", id, "category", "contact")
		writeJSONError(w, http.StatusInternalServerError, "Failed to delete message")
		return
	}
	writeJSONSuccess(w, map[string]any{"id": id})
}
