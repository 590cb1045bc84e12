package handler

import (
	"github.com/MKhiriev/shared-note/internal/config"
	"github.com/MKhiriev/shared-note/internal/handler/http"
	"github.com/MKhiriev/shared-note/internal/logger"
	"github.com/MKhiriev/shared-note/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
