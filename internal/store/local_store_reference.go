// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/models"
)

func (l *localStore) SaveReferenceItem(ctx context.Context, item models.ReferenceItem) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertReferenceQuery(item, l.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localStore.SaveReferenceItem").
			Str("key", item.Key).
			Msg("failed to save reference item")
		return fmt.Errorf("%w: save reference item (key=%s): %w", ErrExecutingStatement, item.Key, err)
	}

	return nil
}

func (l *localStore) ReferenceItem(ctx context.Context, key string) (models.ReferenceItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectReferenceQuery(key)
	if err != nil {
		return models.ReferenceItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		item    models.ReferenceItem
		payload []byte
	)
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&item.Key, &item.Version, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ReferenceItem{}, fmt.Errorf("%w (key=%s)", ErrReferenceItemNotFound, key)
	}
	if err != nil {
		log.Err(err).
			Str("func", "localStore.ReferenceItem").
			Str("key", key).
			Msg("failed to query reference item")
		return models.ReferenceItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	item.Payload = json.RawMessage(payload)

	return item, nil
}
