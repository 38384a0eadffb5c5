// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/store"
	"github.com/MKhiriev/go-observer-sync/models"
)

type referenceService struct {
	catalog store.ReferenceCatalog

	logger *logger.Logger
}

func NewReferenceService(catalog store.ReferenceCatalog, logger *logger.Logger) ReferenceService {
	return &referenceService{
		catalog: catalog,
		logger:  logger,
	}
}

func (r *referenceService) VersionSet(ctx context.Context) (models.VersionSet, error) {
	set, err := r.catalog.VersionSet(ctx)
	if err != nil {
		return nil, err
	}
	return set.Normalize(), nil
}

func (r *referenceService) Item(ctx context.Context, key string) (models.ReferenceItem, error) {
	if key == "" {
		return models.ReferenceItem{}, ErrInvalidDataProvided
	}
	return r.catalog.Item(ctx, key)
}
