// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// parseIDParam extracts the record id from the URL path or, when the
// route carries none, from the id query parameter.
func parseIDParam(r *http.Request) (int64, error) {
	s := chi.URLParam(r, "id")
	if s == "" {
		s = r.URL.Query().Get("id")
	}
	if s == "" {
		return 0, errors.New("missing id")
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// parseLimitParam reads an optional limit query parameter, clamped to max.
func parseLimitParam(r *http.Request, def, max int64) int64 {
	s := r.URL.Query().Get("limit")
	if s == "" {
		return def
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return def
	}
	if n > max {
		return max
	}
	return n
}
