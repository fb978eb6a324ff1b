// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization, and request context handling.
package middleware

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/gau7ab/folio-go/internal/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Context keys for request data.
const (
	ContextKeyAdmin       ContextKey = "admin"
	ContextKeyRequestPath ContextKey = "request_path"
)

// SessionKeyUserID stores the authenticated user's ID in the session.
const SessionKeyUserID = "user_id"

// Auth creates middleware that requires authentication on browser routes.
// Unauthenticated requests are redirected to the login page.
func Auth(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sm.GetInt64(r.Context(), SessionKeyUserID)
			if userID == 0 {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// APIAuth creates middleware that guards the admin JSON API. The session
// must carry a user whose email matches the configured admin identity
// exactly. Every failure mode, whether there is no session, the session
// cannot be resolved, the user is gone, or the email differs, produces
// the same 401 response so callers learn nothing about which check failed.
func APIAuth(sm *scs.SessionManager, db *sql.DB, adminEmail string) func(http.Handler) http.Handler {
	queries := store.New(db)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sm.GetInt64(r.Context(), SessionKeyUserID)
			if userID == 0 {
				writeUnauthorized(w)
				return
			}

			user, err := queries.GetUserByID(r.Context(), userID)
			if err != nil {
				writeUnauthorized(w)
				return
			}

			if user.Email != adminEmail {
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdmin, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeUnauthorized emits the single 401 shape used by APIAuth.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   "Unauthorized",
	})
}

// GetAdmin retrieves the authenticated admin from the request context.
// Returns nil if the request did not pass through APIAuth.
func GetAdmin(r *http.Request) *store.User {
	user, ok := r.Context().Value(ContextKeyAdmin).(store.User)
	if !ok {
		return nil
	}
	return &user
}

// GetAdminID returns the authenticated admin's ID, or 0 if not present.
// Safe to use in logging where a zero-value is acceptable.
func GetAdminID(r *http.Request) int64 {
	if user := GetAdmin(r); user != nil {
		return user.ID
	}
	return 0
}

// RequestPath creates middleware that stores the request path in the context.
// This is used by the logging handler to include the URL in error logs.
func RequestPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ContextKeyRequestPath, r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIP extracts the client IP from the request, honoring the headers
// set by a fronting reverse proxy.
func ClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		// X-Forwarded-For can contain multiple IPs; take the first one
		if idx := strings.IndexByte(ip, ','); idx >= 0 {
			return strings.TrimSpace(ip[:idx])
		}
		return ip
	}

	return r.RemoteAddr
}
