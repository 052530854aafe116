// Package handler assembles the inbound transport handlers of the server.
package handler

import (
	"github.com/asta/blog-keeper/internal/config"
	"github.com/asta/blog-keeper/internal/handler/http"
	"github.com/asta/blog-keeper/internal/logger"
	"github.com/asta/blog-keeper/internal/service"
	"github.com/asta/blog-keeper/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, buildInfo models.AppBuildInfo, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, buildInfo, cfg, logger),
	}, nil
}
