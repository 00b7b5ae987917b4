package http

import (
	"github.com/MKhiriev/go-fin-tracker/internal/devserver"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
)

type Handler struct {
	backend devserver.Service

	logger *logger.Logger
}

func NewHandler(backend devserver.Service, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		backend: backend,
		logger:  logger,
	}
}
