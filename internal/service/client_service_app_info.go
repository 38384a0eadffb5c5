// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-observer-sync/internal/adapter"
	"github.com/MKhiriev/go-observer-sync/internal/logger"
)

type clientAppInfoService struct {
	remote adapter.RemoteService

	logger *logger.Logger
}

func NewClientAppInfoService(remote adapter.RemoteService, logger *logger.Logger) ClientAppInfoService {
	return &clientAppInfoService{
		remote: remote,
		logger: logger,
	}
}

func (s *clientAppInfoService) GetServerVersion(ctx context.Context) (string, error) {
	log := logger.FromContextOr(ctx, s.logger)

	version, err := s.remote.ServerVersion(ctx)
	if err != nil {
		log.Err(err).Str("func", "clientAppInfoService.GetServerVersion").Msg("error getting server version")
		return "", err
	}

	log.Debug().Str("func", "clientAppInfoService.GetServerVersion").Str("server_version", version).Msg("server version received")
	return version, nil
}
