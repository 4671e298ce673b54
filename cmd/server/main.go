package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-qes-vault/internal/config"
	"github.com/MKhiriev/go-qes-vault/internal/handler"
	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/server"
	"github.com/MKhiriev/go-qes-vault/internal/service"
	"github.com/MKhiriev/go-qes-vault/internal/store"
	"github.com/MKhiriev/go-qes-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("qes-vault-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	tracerProvider, err := server.InitTracer(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing tracer")
	}
	if tracerProvider != nil {
		defer func() {
			if err := tracerProvider.Shutdown(ctx); err != nil {
				log.Err(err).Msg("error shutting down tracer provider")
			}
		}()
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
