package http

import (
	"github.com/MKhiriev/shared-note/internal/config"
	"github.com/MKhiriev/shared-note/internal/logger"
	"github.com/MKhiriev/shared-note/internal/service"
	"golang.org/x/time/rate"
)

// jsonEnvelopeSize covers the `{"text":""}` wrapper and escaping slack on top
// of the note text when limiting request bodies.
const jsonEnvelopeSize = 1024

type Handler struct {
	services *service.Services

	maxBodySize int64
	limiter     *rate.Limiter

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A positive cfg.Server.RateLimit enables
// a server-wide token bucket of cfg.Server.RateBurst requests.
func NewHandler(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}

	if cfg.App.MaxNoteSize > 0 {
		// escaped characters may take up to six bytes each in JSON
		h.maxBodySize = cfg.App.MaxNoteSize*6 + jsonEnvelopeSize
	}

	if cfg.Server.RateLimit > 0 {
		burst := max(cfg.Server.RateBurst, 1)
		h.limiter = rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), burst)
	}

	logger.Info().
		Int64("max_body_size", h.maxBodySize).
		Float64("rate_limit", cfg.Server.RateLimit).
		Msg("http handler created")
	return h
}
