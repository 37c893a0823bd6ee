package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-unlock-core/internal/adapter"
	"github.com/MKhiriev/go-unlock-core/internal/client"
	"github.com/MKhiriev/go-unlock-core/internal/config"
	"github.com/MKhiriev/go-unlock-core/internal/logger"
	"github.com/MKhiriev/go-unlock-core/internal/service"
	"github.com/MKhiriev/go-unlock-core/internal/store"
	"github.com/MKhiriev/go-unlock-core/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("unlock-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	remote, err := adapter.NewHTTPAccountsAdapter(adapter.HTTPClientConfig{
		BaseURL:        cfg.API.Address,
		RequestTimeout: cfg.API.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create accounts adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage.DB.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	flags := service.NewEnvFlagSource(cfg.FlagEnvPrefix, map[string]bool{
		service.FlagRotatedCredentials:   true,
		service.FlagLegacyMasterKeyCache: true,
	})

	services, err := service.NewClientServices(storages, remote, flags, workers.NewPool(cfg.Workers.KdfConcurrency), nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	app, err := client.NewApp(services, os.Stdin, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
