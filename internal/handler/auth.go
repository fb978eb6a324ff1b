// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/gau7ab/folio-go/internal/auth"
	"github.com/gau7ab/folio-go/internal/middleware"
	"github.com/gau7ab/folio-go/internal/store"
)

const msgInvalidCredentials = "Invalid credentials"

// loginRequest is the login endpoint body. The username field carries the
// admin email address.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthHandler handles login and logout.
type AuthHandler struct {
	queries         *store.Queries
	sessionManager  *scs.SessionManager
	loginProtection *middleware.LoginProtection
	adminEmail      string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, sm *scs.SessionManager, lp *middleware.LoginProtection, adminEmail string) *AuthHandler {
	return &AuthHandler{
		queries:         store.New(db),
		sessionManager:  sm,
		loginProtection: lp,
		adminEmail:      adminEmail,
	}
}

// LoginPage handles GET /login. An already-authenticated admin is sent on
// to the dashboard; everyone else falls through to the client-served form.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if userID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyUserID); userID > 0 {
		if user, err := h.queries.GetUserByID(r.Context(), userID); err == nil && user.Email == h.adminEmail {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// Login handles POST /api/login. Every failure mode answers with the same
// 401 body so callers cannot probe which accounts exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeJSONError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	clientIP := middleware.ClientIP(r)

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.IsAccountLocked(req.Username); locked {
			slog.Warn("login attempt on locked account",
				"ip", clientIP, "remaining", remaining.Round(time.Second), "category", "auth")
			writeJSONError(w, http.StatusTooManyRequests, "Too many login attempts, slow down")
			return
		}
	}

	user, err := h.queries.GetUserByEmail(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Debug("login attempt for unknown user", "ip", clientIP)
		} else {
			slog.Error("database error during login", "error", err)
		}
		// Record the attempt for unknown users too, so probing unknown
		// accounts costs the same as probing real ones.
		h.recordFailure(req.Username, clientIP)
		writeJSONError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	valid, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil || !valid {
		if err != nil {
			slog.Error("password check error", "error", err)
		}
		slog.Warn("login failed", "ip", clientIP, "user_id", user.ID, "category", "auth")
		h.recordFailure(req.Username, clientIP)
		writeJSONError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	// Only the configured admin identity may hold a session.
	if user.Email != h.adminEmail {
		slog.Warn("login by non-admin account rejected",
			"ip", clientIP, "user_id", user.ID, "category", "auth")
		h.recordFailure(req.Username, clientIP)
		writeJSONError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.RecordSuccessfulLogin(req.Username)
	}

	// Re-hash if the stored hash predates the current parameters.
	if auth.NeedsRehash(user.PasswordHash) {
		if newHash, err := auth.HashPassword(req.Password); err == nil {
			if err := h.queries.UpdateUserPassword(r.Context(), user.ID, newHash); err != nil {
				slog.Error("failed to re-hash password", "error", err, "user_id", user.ID)
			}
		}
	}

	if err := h.queries.UpdateUserLastLogin(r.Context(), user.ID, time.Now()); err != nil {
		slog.Error("failed to update last login time", "error", err, "user_id", user.ID)
	}

	// New session ID on privilege change, prevents fixation.
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		slog.Error("session renewal error", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	h.sessionManager.Put(r.Context(), middleware.SessionKeyUserID, user.ID)

	slog.Info("admin logged in", "user_id", user.ID, "ip", clientIP, "category", "auth")
	writeJSONSuccess(w, nil)
}

// Logout handles POST /api/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyUserID)
	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("session destroy error", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Logout failed")
		return
	}
	if userID > 0 {
		slog.Info("admin logged out", "user_id", userID, "category", "auth")
	}
	writeJSONSuccess(w, nil)
}

func (h *AuthHandler) recordFailure(username, clientIP string) {
	if h.loginProtection == nil {
		return
	}
	if locked, duration := h.loginProtection.RecordFailedAttempt(username); locked {
		slog.Warn("account locked after repeated failures",
			"ip", clientIP, "duration", duration.String(), "category", "auth")
	}
}
