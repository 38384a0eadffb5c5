// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-observer-sync/internal/config"
	"github.com/MKhiriev/go-observer-sync/internal/handler"
	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/server"
	"github.com/MKhiriev/go-observer-sync/internal/service"
	"github.com/MKhiriev/go-observer-sync/internal/store"
	"github.com/MKhiriev/go-observer-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const commandToken = "token"

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("observer-sync-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	if len(cfg.Args) > 0 && cfg.Args[0] == commandToken {
		if len(cfg.Args) != 2 {
			log.Fatal().Msg("usage: token <observer-id>")
		}
		token, err := service.NewAuthService(cfg.App, log).CreateToken(ctx, cfg.Args[1])
		if err != nil {
			log.Fatal().Err(err).Msg("error creating token")
		}
		fmt.Println(token.String())
		return
	}

	storages, err := store.NewStorages(cfg.ReferenceFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}
