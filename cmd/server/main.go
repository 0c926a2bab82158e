package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tenant-vet/internal/adapter"
	"github.com/MKhiriev/go-tenant-vet/internal/config"
	"github.com/MKhiriev/go-tenant-vet/internal/handler"
	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/internal/server"
	"github.com/MKhiriev/go-tenant-vet/internal/service"
	"github.com/MKhiriev/go-tenant-vet/internal/store"
	"github.com/MKhiriev/go-tenant-vet/internal/workers"
	"github.com/MKhiriev/go-tenant-vet/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := getBuildInfo()
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-tenant-vet-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Bool("orchestration_enabled", cfg.Adapter.Enabled).
		Str("orchestration_url", cfg.Adapter.OrchestrationURL).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	var orchestrationAdapter adapter.OrchestrationAdapter
	if cfg.Adapter.Enabled {
		orchestrationAdapter, err = adapter.NewHTTPOrchestrationAdapter(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating orchestration adapter")
		}
	} else {
		log.Info().Msg("orchestration disabled, checks run through the stage simulator")
	}

	services, err := service.NewServices(storages, orchestrationAdapter, workers.NewScheduler(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func getBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
