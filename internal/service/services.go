package service

import (
	"github.com/MKhiriev/shared-note/internal/config"
	"github.com/MKhiriev/shared-note/internal/logger"
	"github.com/MKhiriev/shared-note/internal/store"
	"github.com/MKhiriev/shared-note/models"
)

type Services struct {
	NoteService    NoteService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	noteService := NewNoteValidationService(cfg).Wrap(NewNoteService(storages.NoteRepository, logger))

	return &Services{
		NoteService:    noteService,
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
