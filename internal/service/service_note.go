// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/shared-note/internal/logger"
	"github.com/MKhiriev/shared-note/internal/store"
	"github.com/MKhiriev/shared-note/models"
)

type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (s *noteService) GetNote(ctx context.Context) (models.Note, error) {
	stored, err := s.noteRepository.GetNote(ctx)
	if errors.Is(err, store.ErrNoteNotFound) {
		logger.FromContext(ctx).Debug().Msg("no note stored yet, returning empty note")
		return models.NewNote(""), nil
	}
	if err != nil {
		return models.Note{}, fmt.Errorf("get note: %w", err)
	}

	return models.NewNote(stored.Text), nil
}

func (s *noteService) SaveNote(ctx context.Context, note models.Note) error {
	stored, err := s.noteRepository.SaveNote(ctx, note.Value())
	if err != nil {
		return fmt.Errorf("save note: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int("length", len(stored.Text)).
		Time("updated_at", stored.UpdatedAt).
		Msg("note saved")
	return nil
}
