// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/models"
)

func (l *localStore) UnsyncedRecords(ctx context.Context, kind models.RecordKind) ([]models.SyncableRecord, error) {
	query, args, err := buildUnsyncedRecordsQuery(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return l.queryRecords(ctx, "localStore.UnsyncedRecords", query, args...)
}

func (l *localStore) UnsyncedAnswers(ctx context.Context) ([]models.SyncableRecord, error) {
	query, args, err := buildUnsyncedRecordsQuery(models.KindQuestionAnswer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return l.queryRecords(ctx, "localStore.UnsyncedAnswers", query, args...)
}

func (l *localStore) Notes(ctx context.Context) ([]models.SyncableRecord, error) {
	query, args, err := buildAllOfKindQuery(models.KindNote)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return l.queryRecords(ctx, "localStore.Notes", query, args...)
}

func (l *localStore) queryRecords(ctx context.Context, funcName, query string, args ...any) ([]models.SyncableRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Msg("failed to execute query for records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.SyncableRecord
	for rows.Next() {
		var (
			r       models.SyncableRecord
			kind    string
			payload []byte
		)
		if err := rows.Scan(&r.ID, &kind, &payload, &r.Synced, &r.CreatedAt); err != nil {
			log.Err(err).
				Str("func", funcName).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		r.Kind = models.RecordKind(kind)
		r.Payload = json.RawMessage(payload)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", funcName).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (l *localStore) MarkSynced(ctx context.Context, records ...models.SyncableRecord) error {
	if len(records) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}

	query, args, err := buildMarkSyncedQuery(ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localStore.MarkSynced").
			Strs("record_ids", ids).
			Msg("failed to mark records as synced")
		return fmt.Errorf("%w: mark synced: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localStore) DeleteNote(ctx context.Context, note models.SyncableRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(note.ID, models.KindNote)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.DeleteNote").
			Str("record_id", note.ID).
			Msg("failed to delete note")
		return fmt.Errorf("%w: delete note (id=%s): %w", ErrExecutingStatement, note.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%s): %w", note.ID, err)
	}
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "localStore.DeleteNote").
			Str("record_id", note.ID).
			Msg("no rows affected during note delete: record not found")
		return fmt.Errorf("%w (id=%s)", ErrRecordNotFound, note.ID)
	}

	return nil
}

func (l *localStore) PurgeAnswersAndNotes(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildPurgeKindsQuery(models.KindQuestionAnswer, models.KindNote)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.PurgeAnswersAndNotes").
			Msg("failed to purge answers and notes")
		return fmt.Errorf("%w: purge: %w", ErrExecutingStatement, err)
	}

	if n, err := result.RowsAffected(); err == nil {
		log.Info().
			Str("func", "localStore.PurgeAnswersAndNotes").
			Int64("purged", n).
			Msg("cached answers and notes purged")
	}

	return nil
}

func (l *localStore) AddRecord(ctx context.Context, record models.SyncableRecord) error {
	log := logger.FromContext(ctx)

	if record.ID == "" || !record.Kind.Valid() || !json.Valid(record.Payload) {
		return fmt.Errorf("%w: id=%q kind=%q", ErrInvalidRecord, record.ID, record.Kind)
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = l.now()
	}

	query, args, err := buildInsertRecordQuery(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := l.DB.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: id=%s", ErrRecordAlreadyExists, record.ID)
		}
		log.Err(err).
			Str("func", "localStore.AddRecord").
			Str("record_id", record.ID).
			Str("kind", record.Kind.String()).
			Msg("failed to insert record")
		return fmt.Errorf("%w: insert record (id=%s): %w", ErrExecutingStatement, record.ID, err)
	}

	return nil
}
