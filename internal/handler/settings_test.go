// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gau7ab/folio-go/internal/service"
	"github.com/gau7ab/folio-go/internal/store"
)

func TestSettingsGet(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	q := store.New(db)
	if err := q.SetConfig(context.Background(), "site_title", "My Portfolio"); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}

	h := NewSettingsHandler(db, testCacheManager(t, db))
	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var settings map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &settings); err != nil {
		t.Fatalf("decoding settings: %v", err)
	}
	if settings["site_title"] != "My Portfolio" {
		t.Errorf("site_title = %q, want %q", settings["site_title"], "My Portfolio")
	}
}

func TestSettingsUpdate(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	q := store.New(db)
	cm := testCacheManager(t, db)
	h := NewSettingsHandler(db, cm)

	body := `{"site_title":"Updated","social_github":"https://github.com/someone"}`
	rec := httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest(http.MethodPut, "/api/admin/settings", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	cfg, err := q.GetConfig(context.Background(), "site_title")
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if cfg.Value != "Updated" {
		t.Errorf("site_title = %q, want %q", cfg.Value, "Updated")
	}
}

func TestSettingsUpdateRejectsBadBody(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	h := NewSettingsHandler(db, testCacheManager(t, db))

	for _, body := range []string{"not json", `{" ":"x"}`} {
		rec := httptest.NewRecorder()
		h.Update(rec, httptest.NewRequest(http.MethodPut, "/api/admin/settings", strings.NewReader(body)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestSettingsFlowIntoSnapshotMeta(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	q := store.New(db)
	cm := testCacheManager(t, db)
	settings := NewSettingsHandler(db, cm)
	portfolio := NewPortfolioHandler(service.NewSnapshotService(q), cm)

	body := `{"site_title":"Trail Notes"}`
	rec := httptest.NewRecorder()
	settings.Update(rec, httptest.NewRequest(http.MethodPut, "/api/admin/settings", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("settings update status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	portfolio.Get(rec, httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("portfolio status = %d", rec.Code)
	}

	var snap struct {
		Meta map[string]string `json:"meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	if snap.Meta["site_title"] != "Trail Notes" {
		t.Errorf("meta site_title = %q, want %q", snap.Meta["site_title"], "Trail Notes")
	}
}
