package http

import (
	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
