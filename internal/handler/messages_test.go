// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/gau7ab/folio-go/internal/store"
)

func seedMessage(t *testing.T, q *store.Queries, subject string) store.Message {
	t.Helper()

	msg, err := q.CreateMessage(context.Background(), store.CreateMessageParams{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: subject,
		Body:    "Hello there",
	})
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	return msg
}

func newMessagesRouter(t *testing.T) (*chi.Mux, *store.Queries, func()) {
	t.Helper()

	db, cleanup := testDB(t)
	h := NewMessagesHandler(db)

	r := chi.NewRouter()
	r.Route("/api/admin", func(r chi.Router) {
		h.Mount(r)
	})
	return r, store.New(db), cleanup
}

func TestMessagesList(t *testing.T) {
	router, q, cleanup := newMessagesRouter(t)
	defer cleanup()

	rec := doJSON(t, router, http.MethodGet, "/api/admin/messages", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	seedMessage(t, q, "First")
	seedMessage(t, q, "Second")

	rec = doJSON(t, router, http.MethodGet, "/api/admin/messages", "")
	var messages []MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &messages); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("list has %d entries, want 2", len(messages))
	}
	// Newest first.
	if messages[0].Subject != "Second" {
		t.Errorf("first entry = %q, want Second", messages[0].Subject)
	}
}

func TestMessagesMarkRead(t *testing.T) {
	router, q, cleanup := newMessagesRouter(t)
	defer cleanup()

	msg := seedMessage(t, q, "Unread")

	rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/admin/messages/%d/read", msg.ID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	stored, err := q.GetMessage(context.Background(), msg.ID)
	if err != nil {
		t.Fatalf("GetMessage: %v", err)
	}
	if !stored.IsRead {
		t.Error("message still unread")
	}

	rec = doJSON(t, router, http.MethodPut, "/api/admin/messages/9999/read", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestMessagesUnreadCount(t *testing.T) {
	router, q, cleanup := newMessagesRouter(t)
	defer cleanup()

	seedMessage(t, q, "One")
	seedMessage(t, q, "Two")

	rec := doJSON(t, router, http.MethodGet, "/api/admin/messages/unread", "")
	var resp struct {
		Success bool  `json:"success"`
		Count   int64 `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("count = %d, want 2", resp.Count)
	}
}

func TestMessagesDeleteIdempotent(t *testing.T) {
	router, q, cleanup := newMessagesRouter(t)
	defer cleanup()

	msg := seedMessage(t, q, "Doomed")

	for i := 0; i < 2; i++ {
		rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/admin/messages/%d", msg.ID), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("delete attempt %d: status = %d, want 200", i+1, rec.Code)
		}
	}
}
