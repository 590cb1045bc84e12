package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/shared-note/models"
)

// NoteService reads and replaces the shared note.
type NoteService interface {
	// GetNote returns the stored note; a note that was never saved is
	// returned as an empty text.
	GetNote(ctx context.Context) (models.Note, error)
	// SaveNote replaces the stored note.
	SaveNote(ctx context.Context, note models.Note) error
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
