// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gau7ab/folio-go/internal/middleware"
	"github.com/gau7ab/folio-go/internal/service"
)

// contactRequest is the public contact form body.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ContactHandler handles public contact form submissions.
type ContactHandler struct {
	inbox *service.InboxService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(inbox *service.InboxService) *ContactHandler {
	return &ContactHandler{inbox: inbox}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := h.inbox.Submit(r.Context(), service.Submission{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Body:      req.Body,
		IPAddress: middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeJSONError(w, http.StatusBadRequest, verr.Error())
			return
		}
		slog.Error("failed to store contact message", "error", err, "category", "contact")
		writeJSONError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	writeJSONSuccess(w, map[string]any{"id": msg.ID})
}
