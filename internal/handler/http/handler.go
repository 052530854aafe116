package http

import (
	"time"

	"github.com/asta/blog-keeper/internal/config"
	"github.com/asta/blog-keeper/internal/logger"
	"github.com/asta/blog-keeper/internal/service"
	"github.com/asta/blog-keeper/models"
)

type Handler struct {
	services  *service.Services
	buildInfo models.AppBuildInfo

	// requestTimeout bounds each request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, buildInfo models.AppBuildInfo, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		buildInfo:      buildInfo,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
