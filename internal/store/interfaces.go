package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/shared-note/models"
)

// NoteRepository persists the single shared note.
type NoteRepository interface {
	// GetNote returns the stored note or [ErrNoteNotFound].
	GetNote(ctx context.Context) (models.StoredNote, error)
	// SaveNote replaces the stored note text and returns the new record.
	SaveNote(ctx context.Context, text string) (models.StoredNote, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
