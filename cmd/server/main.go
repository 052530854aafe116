package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/asta/blog-keeper/internal/adapter"
	"github.com/asta/blog-keeper/internal/config"
	"github.com/asta/blog-keeper/internal/handler"
	"github.com/asta/blog-keeper/internal/logger"
	"github.com/asta/blog-keeper/internal/server"
	"github.com/asta/blog-keeper/internal/service"
	"github.com/asta/blog-keeper/internal/store"
	"github.com/asta/blog-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("blog-server").Fatal().Err(err).Msg("error getting configs")
	}

	level, err := logger.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logger.NewLogger("blog-server").Fatal().Err(err).Str("level", cfg.App.LogLevel).Msg("invalid log level")
	}
	log := logger.NewLoggerWithLevel("blog-server", level)

	if cfg.App.Version == "" {
		cfg.App.Version = versionOrDev(buildVersion)
	}

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	contentStorage := adapter.NewKodoStorage(cfg.Storage.Objects, log)

	services, err := service.NewServices(storages, contentStorage, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = bootstrapUser(ctx, services.AuthService, cfg.App); err != nil {
		log.Fatal().Err(err).Msg("error creating bootstrap user")
	}

	buildInfo.Version = cfg.App.Version
	handlers, err := handler.NewHandlers(services, buildInfo, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

// bootstrapUser creates the configured admin account on first start.
func bootstrapUser(ctx context.Context, auth service.AuthService, cfg config.App) error {
	name, password, ok := cfg.BootstrapCredentials()
	if !ok {
		return nil
	}

	_, err := auth.RegisterUser(ctx, name, password)
	if errors.Is(err, store.ErrUserAlreadyExists) {
		return nil
	}
	return err
}

func versionOrDev(v string) string {
	if v == "" {
		return "dev"
	}
	return v
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Build)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
