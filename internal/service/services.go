package service

import (
	"fmt"

	"github.com/asta/blog-keeper/internal/adapter"
	"github.com/asta/blog-keeper/internal/config"
	"github.com/asta/blog-keeper/internal/logger"
	"github.com/asta/blog-keeper/internal/store"
	"github.com/asta/blog-keeper/internal/validators"
)

type Services struct {
	AuthService    AuthService
	BlogService    BlogService
	AppInfoService AppInfoService
}

// NewServices wires the services over the repositories and the content
// storage. BlogService is wrapped with request validation.
func NewServices(storages *store.Storages, contentStorage adapter.ContentStorage, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewBlogValidator()
	blogService := NewBlogValidationService(validator).
		Wrap(NewBlogService(storages.BlogRepository, contentStorage, cfg.Storage.Objects, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		BlogService:    blogService,
		AppInfoService: appInfoService,
	}, nil
}
