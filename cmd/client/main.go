// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-observer-sync/internal/adapter"
	"github.com/MKhiriev/go-observer-sync/internal/client"
	"github.com/MKhiriev/go-observer-sync/internal/config"
	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/service"
	"github.com/MKhiriev/go-observer-sync/internal/store"
	"github.com/MKhiriev/go-observer-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewClientLogger("observer-sync-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	remote, err := adapter.NewHTTPRemoteService(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote service adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages.LocalStore, remote, cfg.Sync, client.Report(os.Stdout), log)
	app := client.NewApp(services, cfg, os.Stdout, log)

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		storages.Close()
		os.Exit(1)
	}
}
