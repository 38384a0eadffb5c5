// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-observer-sync/internal/config"
	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/store"
)

// Services groups the reference server's services.
type Services struct {
	AuthService      AuthService
	ReferenceService ReferenceService
	InboxService     InboxService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:      NewAuthService(cfg.App, logger),
		ReferenceService: NewReferenceService(storages.Catalog, logger),
		InboxService:     NewInboxValidationService().Wrap(NewInboxService(storages.Inbox, logger)),
		AppInfoService:   appInfo,
	}, nil
}
