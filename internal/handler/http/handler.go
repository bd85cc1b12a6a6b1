package http

import (
	"github.com/MKhiriev/hopwhistle/internal/config"
	"github.com/MKhiriev/hopwhistle/internal/logger"
)

// Handler serves the HTTP API. settings is shared read-only with the rest
// of the process.
type Handler struct {
	settings *config.Settings

	logger *logger.Logger
}

func NewHandler(settings *config.Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		settings: settings,
		logger:   logger,
	}
}
