// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/gau7ab/folio-go/internal/cache"
	"github.com/gau7ab/folio-go/internal/store"
)

func newResourceRouter(t *testing.T) (*chi.Mux, *cache.Manager, func()) {
	t.Helper()

	db, cleanup := testDB(t)
	cm := testCacheManager(t, db)
	resources := NewContentResources(store.New(db), cm)

	r := chi.NewRouter()
	r.Route("/api/admin", func(r chi.Router) {
		resources.Mount(r)
	})
	return r, cm, cleanup
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestResourceListEmpty(t *testing.T) {
	router, _, cleanup := newResourceRouter(t)
	defer cleanup()

	rec := doJSON(t, router, http.MethodGet, "/api/admin/skills", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestResourceCreate(t *testing.T) {
	router, _, cleanup := newResourceRouter(t)
	defer cleanup()

	rec := doJSON(t, router, http.MethodPost, "/api/admin/skills",
		`{"name":"Go","category":"Languages","level":90}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var skill SkillResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &skill); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if skill.ID == 0 {
		t.Error("expected assigned id")
	}
	if skill.Name != "Go" || skill.Category != "Languages" || skill.Level != 90 {
		t.Errorf("unexpected record: %+v", skill)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/admin/skills", "")
	var skills []SkillResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &skills); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(skills) != 1 {
		t.Errorf("list has %d entries, want 1", len(skills))
	}
}

func TestResourceCreateValidation(t *testing.T) {
	router, _, cleanup := newResourceRouter(t)
	defer cleanup()

	tests := []struct {
		name string
		path string
		body string
	}{
		{"skill without name", "/api/admin/skills", `{"category":"Languages"}`},
		{"skill without category", "/api/admin/skills", `{"name":"Go"}`},
		{"skill level out of range", "/api/admin/skills", `{"name":"Go","category":"Languages","level":200}`},
		{"about without section", "/api/admin/about", `{"title":"Hi"}`},
		{"experience without company", "/api/admin/experience", `{"role":"Engineer","start_date":"2020-01"}`},
		{"education without institution", "/api/admin/education", `{"degree":"BSc","start_year":2015}`},
		{"project without title", "/api/admin/projects", `{"summary":"something"}`},
		{"achievement without title", "/api/admin/achievements", `{"issuer":"ACM"}`},
		{"trek without name", "/api/admin/treks", `{"region":"Annapurna"}`},
		{"malformed body", "/api/admin/skills", `{not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, tt.path, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
			// Nothing may be stored on a rejected create.
			list := doJSON(t, router, http.MethodGet, tt.path, "")
			if got := strings.TrimSpace(list.Body.String()); got != "[]" {
				t.Errorf("collection not empty after rejected create: %s", got)
			}
		})
	}
}

func TestResourceUpdate(t *testing.T) {
	router, _, cleanup := newResourceRouter(t)
	defer cleanup()

	rec := doJSON(t, router, http.MethodPost, "/api/admin/skills",
		`{"name":"Go","category":"Languages","level":80}`)
	var skill SkillResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &skill); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	body := `{"name":"Go","category":"Languages","level":95}`

	t.Run("existing id via path", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/admin/skills/%d", skill.ID), body)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("existing id via query", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/admin/skills?id=%d", skill.ID), body)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("nonexistent id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/api/admin/skills/9999", body)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/api/admin/skills", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestResourceDeleteIdempotent(t *testing.T) {
	router, _, cleanup := newResourceRouter(t)
	defer cleanup()

	rec := doJSON(t, router, http.MethodPost, "/api/admin/skills",
		`{"name":"Go","category":"Languages"}`)
	var skill SkillResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &skill); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	for i := 0; i < 2; i++ {
		rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/admin/skills/%d", skill.ID), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("delete attempt %d: status = %d, want 200", i+1, rec.Code)
		}
		var resp struct {
			Success bool  `json:"success"`
			ID      int64 `json:"id"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if !resp.Success || resp.ID != skill.ID {
			t.Errorf("delete attempt %d: response %+v", i+1, resp)
		}
	}
}

func TestResourceProjectSlugDerived(t *testing.T) {
	router, _, cleanup := newResourceRouter(t)
	defer cleanup()

	rec := doJSON(t, router, http.MethodPost, "/api/admin/projects",
		`{"title":"My Cool App","tech":["Go","SQLite"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var proj ProjectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &proj); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if proj.Slug != "my-cool-app" {
		t.Errorf("slug = %q, want my-cool-app", proj.Slug)
	}
	if len(proj.Tech) != 2 || proj.Tech[0] != "Go" {
		t.Errorf("tech = %v", proj.Tech)
	}
}

func TestResourceMutationInvalidatesSnapshot(t *testing.T) {
	router, cm, cleanup := newResourceRouter(t)
	defer cleanup()

	ctx := context.Background()
	if err := cm.SetSnapshot(ctx, []byte(`{"stale":true}`)); err != nil {
		t.Fatalf("SetSnapshot: %v", err)
	}

	rec := doJSON(t, router, http.MethodPost, "/api/admin/skills",
		`{"name":"Go","category":"Languages"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	if _, err := cm.GetSnapshot(ctx); !errors.Is(err, cache.ErrCacheMiss) {
		t.Errorf("GetSnapshot after mutation: err = %v, want cache miss", err)
	}
}

func TestResourceListDegradesToEmpty(t *testing.T) {
	db, cleanup := testDB(t)
	cm := testCacheManager(t, db)
	resources := NewContentResources(store.New(db), cm)

	r := chi.NewRouter()
	r.Route("/api/admin", func(r chi.Router) {
		resources.Mount(r)
	})

	// A closed database makes every query fail.
	cleanup()

	rec := doJSON(t, r, http.MethodGet, "/api/admin/skills", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}
