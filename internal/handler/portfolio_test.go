// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gau7ab/folio-go/internal/service"
	"github.com/gau7ab/folio-go/internal/store"
)

func TestPortfolioGet(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	q := store.New(db)
	cm := testCacheManager(t, db)
	h := NewPortfolioHandler(service.NewSnapshotService(q), cm)

	if _, err := q.CreateSkill(context.Background(), store.CreateSkillParams{
		Name: "Go", Category: "Languages", Level: 90,
	}); err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}

	get := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
		rec := httptest.NewRecorder()
		h.Get(rec, req)
		return rec
	}

	rec := get()
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("X-Cache"); got != "MISS" {
		t.Errorf("first request X-Cache = %q, want MISS", got)
	}

	var snap struct {
		Skills []struct {
			Category string `json:"category"`
		} `json:"skills"`
		Projects []any `json:"projects"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	if len(snap.Skills) != 1 || snap.Skills[0].Category != "Languages" {
		t.Errorf("skills = %+v", snap.Skills)
	}
	if snap.Projects == nil {
		t.Error("projects missing, want empty array")
	}

	rec = get()
	if got := rec.Header().Get("X-Cache"); got != "HIT" {
		t.Errorf("second request X-Cache = %q, want HIT", got)
	}

	// A mutation drops the cached snapshot.
	cm.InvalidateSnapshot(context.Background())
	rec = get()
	if got := rec.Header().Get("X-Cache"); got != "MISS" {
		t.Errorf("request after invalidation X-Cache = %q, want MISS", got)
	}
}

func TestPortfolioGetEmptyDatabase(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	h := NewPortfolioHandler(service.NewSnapshotService(store.New(db)), testCacheManager(t, db))

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var snap map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	for _, section := range []string{"about", "skills", "experience", "education", "projects", "achievements", "treks"} {
		raw, ok := snap[section]
		if !ok {
			t.Errorf("section %q missing", section)
			continue
		}
		if string(raw) == "null" {
			t.Errorf("section %q is null, want empty array", section)
		}
	}
}
