// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/shared-note/internal/logger"
	"github.com/MKhiriev/shared-note/models"
)

// getNote writes the stored note as {"text": "..."}.
func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	note, err := h.services.NoteService.GetNote(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNote").Msg("error getting note")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// putNote replaces the stored note with the request body. A body without a
// "text" property is rejected.
func (h *Handler) putNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	note, err := h.decodeNote(w, r)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.putNote").Msg("invalid note in request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if err = h.services.NoteService.SaveNote(r.Context(), note); err != nil {
		log.Err(err).Str("func", "*Handler.putNote").Msg("error saving note")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeNote(w http.ResponseWriter, r *http.Request) (models.Note, error) {
	body := io.Reader(r.Body)
	if h.maxBodySize > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var note models.Note
	if err := json.NewDecoder(body).Decode(&note); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return models.Note{}, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxBytesErr.Limit)
		}
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return note, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
