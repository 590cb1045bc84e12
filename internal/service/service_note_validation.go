package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shared-note/internal/config"
	"github.com/MKhiriev/shared-note/models"
)

// NoteValidationService rejects notes without text or larger than the
// configured limit before they reach the wrapped service.
type NoteValidationService struct {
	inner       NoteService
	maxNoteSize int64
}

func NewNoteValidationService(cfg config.ServerApp) NoteServiceWrapper {
	return &NoteValidationService{maxNoteSize: cfg.MaxNoteSize}
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}

func (v *NoteValidationService) GetNote(ctx context.Context) (models.Note, error) {
	return v.inner.GetNote(ctx)
}

func (v *NoteValidationService) SaveNote(ctx context.Context, note models.Note) error {
	if !note.HasText() {
		return ErrValidationNoText
	}

	if v.maxNoteSize > 0 && int64(len(note.Value())) > v.maxNoteSize {
		return fmt.Errorf("%w: %d > %d bytes", ErrNoteTooLarge, len(note.Value()), v.maxNoteSize)
	}

	return v.inner.SaveNote(ctx, note)
}
