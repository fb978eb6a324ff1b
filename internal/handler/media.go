// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gau7ab/folio-go/internal/cache"
	"github.com/gau7ab/folio-go/internal/imaging"
	"github.com/gau7ab/folio-go/internal/store"
)

// MaxPhotoUploadSize caps a single trek photo upload.
const MaxPhotoUploadSize = 20 * 1024 * 1024 // 20MB

// TrekPhotosHandler manages photo uploads attached to treks.
type TrekPhotosHandler struct {
	queries      *store.Queries
	processor    *imaging.Processor
	cacheManager *cache.Manager
}

// NewTrekPhotosHandler creates a new TrekPhotosHandler.
func NewTrekPhotosHandler(db *sql.DB, processor *imaging.Processor, cm *cache.Manager) *TrekPhotosHandler {
	return &TrekPhotosHandler{
		queries:      store.New(db),
		processor:    processor,
		cacheManager: cm,
	}
}

// Mount registers the photo routes on the given admin router.
func (h *TrekPhotosHandler) Mount(r chi.Router) {
	r.Route("/treks/{trekID}/photos", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Upload)
	})
	r.Delete("/photos/{id}", h.Delete)
}

// List returns the photos of one trek. Store failures degrade to an
// empty list.
func (h *TrekPhotosHandler) List(w http.ResponseWriter, r *http.Request) {
	trekID, err := parseTrekIDParam(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid trek ID")
		return
	}
	photos, err := h.queries.ListTrekPhotos(r.Context(), trekID)
	if err != nil {
		slog.Error("failed to list trek photos", "error", err, "trek_id", trekID, "category", "media")
		writeJSON(w, []TrekPhotoResponse{})
		return
	}
	out := make([]TrekPhotoResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, toTrekPhotoResponse(p))
	}
	writeJSON(w, out)
}

// Upload handles a multipart photo upload for one trek. The image is
// re-encoded, resized and thumbnailed before the record is stored.
func (h *TrekPhotosHandler) Upload(w http.ResponseWriter, r *http.Request) {
	trekID, err := parseTrekIDParam(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid trek ID")
		return
	}
	if _, err := h.queries.GetTrek(r.Context(), trekID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Trek not found")
			return
		}
		slog.Error("failed to load trek", "error", err, "trek_id", trekID)
		writeJSONError(w, http.StatusInternalServerError, "Failed to upload photo")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxPhotoUploadSize)
	if err := r.ParseMultipartForm(MaxPhotoUploadSize); err != nil {
		writeJSONError(w, http.StatusBadRequest, "File too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.processor.Process(file)
	if err != nil {
		slog.Error("failed to process photo", "error", err,
			"filename", header.Filename, "trek_id", trekID, "category", "media")
		writeJSONError(w, http.StatusBadRequest, "Unsupported or corrupt image")
		return
	}

	params := store.CreateTrekPhotoParams{
		TrekID:    trekID,
		FilePath:  result.FilePath,
		ThumbPath: result.ThumbPath,
		Caption:   r.FormValue("caption"),
		Width:     result.Width,
		Height:    result.Height,
		Position:  parsePositionValue(r.FormValue("position")),
	}
	if !result.TakenAt.IsZero() {
		params.TakenAt = sql.NullTime{Time: result.TakenAt, Valid: true}
	}

	photo, err := h.queries.CreateTrekPhoto(r.Context(), params)
	if err != nil {
		slog.Error("failed to store photo record", "error", err, "trek_id", trekID, "category", "media")
		// Remove the orphaned files, the record never landed.
		if delErr := h.processor.Delete(result.FilePath, result.ThumbPath); delErr != nil {
			slog.Error("failed to remove orphaned photo files", "error", delErr)
		}
		writeJSONError(w, http.StatusInternalServerError, "Failed to upload photo")
		return
	}

	h.cacheManager.InvalidateSnapshot(r.Context())
	slog.Info("trek photo uploaded", "photo_id", photo.ID, "trek_id", trekID, "category", "media")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toTrekPhotoResponse(photo))
}

// Delete removes a photo record and its files. Deleting a nonexistent id
// is not an error.
func (h *TrekPhotosHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	photo, err := h.queries.GetTrekPhoto(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONSuccess(w, map[string]any{"id": id})
			return
		}
		slog.Error("failed to load photo", "error", err, "id", id, "category", "media")
		writeJSONError(w, http.StatusInternalServerError, "Failed to delete photo")
		return
	}

	if err := h.queries.DeleteTrekPhoto(r.Context(), id); err != nil {
		slog.Error("failed to delete photo record", "error", err, "id", id, "category", "media")
		writeJSONError(w, http.StatusInternalServerError, "Failed to delete photo")
		return
	}
	if err := h.processor.Delete(photo.FilePath, photo.ThumbPath); err != nil {
		slog.Error("failed to remove photo files", "error", err, "id", id, "category", "media")
	}

	h.cacheManager.InvalidateSnapshot(r.Context())
	writeJSONSuccess(w, map[string]any{"id": id})
}

func parseTrekIDParam(r *http.Request) (int64, error) {
	s := chi.URLParam(r, "trekID")
	if s == "" {
		return 0, errors.New("missing trek id")
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid trek id")
	}
	return id, nil
}

func parsePositionValue(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
