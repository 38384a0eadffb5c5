// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/store"
	"github.com/MKhiriev/go-observer-sync/internal/utils"
	"github.com/MKhiriev/go-observer-sync/internal/validators"
	"github.com/MKhiriev/go-observer-sync/models"
)

type recordService struct {
	localStore store.LocalStore
	validator  validators.Validator
	ids        idGenerator
	now        func() time.Time

	logger *logger.Logger
}

func NewRecordService(localStore store.LocalStore, logger *logger.Logger) RecordService {
	return &recordService{
		localStore: localStore,
		validator:  validators.NewRecordValidator(),
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *recordService) Add(ctx context.Context, kind models.RecordKind, payload json.RawMessage) (models.SyncableRecord, error) {
	record := models.SyncableRecord{
		ID:        s.ids.Generate(),
		Kind:      kind,
		Payload:   payload,
		CreatedAt: s.now().UTC(),
	}
	if err := s.validator.Validate(ctx, record); err != nil {
		return models.SyncableRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.localStore.AddRecord(ctx, record); err != nil {
		s.logger.Err(err).Str("func", "recordService.Add").Str("kind", kind.String()).Msg("error storing record")
		return models.SyncableRecord{}, fmt.Errorf("add %s record: %w", kind, err)
	}

	s.logger.Debug().Str("func", "recordService.Add").
		Str("kind", kind.String()).
		Str("record_id", record.ID).
		Msg("record queued for upload")

	return record, nil
}
