// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/models"
)

func (l *localStore) CachedVersionSet(ctx context.Context) (models.VersionSet, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildVersionCommitExistsQuery()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var commits int
	if err := l.DB.QueryRowContext(ctx, query, args...).Scan(&commits); err != nil {
		log.Err(err).
			Str("func", "localStore.CachedVersionSet").
			Msg("failed to check version set commit marker")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if commits == 0 {
		return nil, false, nil
	}

	query, args, err = buildSelectVersionsQuery()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.CachedVersionSet").
			Msg("failed to query cached version set")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	set := models.VersionSet{}
	for rows.Next() {
		var e models.VersionEntry
		if err := rows.Scan(&e.Key, &e.Version); err != nil {
			log.Err(err).
				Str("func", "localStore.CachedVersionSet").
				Msg("failed to scan version row")
			return nil, false, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		set = append(set, e)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return set, true, nil
}

// CommitVersionSet replaces the cached set, records the commit marker and
// prunes reference items outside the new set in one transaction.
func (l *localStore) CommitVersionSet(ctx context.Context, set models.VersionSet) (err error) {
	log := logger.FromContext(ctx)
	set = set.Normalize()

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.CommitVersionSet").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				log.Err(rbErr).
					Str("func", "localStore.CommitVersionSet").
					Msg("failed to rollback transaction")
			}
		}
	}()

	builders := []func() (string, []any, error){
		buildClearVersionsQuery,
	}
	if len(set) > 0 {
		builders = append(builders, func() (string, []any, error) { return buildInsertVersionsQuery(set) })
	}
	builders = append(builders,
		func() (string, []any, error) { return buildMarkVersionCommitQuery(l.now()) },
		func() (string, []any, error) { return buildPruneReferenceQuery(set.Keys()) },
	)

	for _, build := range builders {
		query, args, buildErr := build()
		if buildErr != nil {
			err = fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localStore.CommitVersionSet").
				Msg("failed to execute commit statement")
			err = fmt.Errorf("%w: commit version set: %w", ErrExecutingStatement, err)
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "localStore.CommitVersionSet").
			Msg("failed to commit transaction")
		err = fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		return err
	}

	log.Info().
		Str("func", "localStore.CommitVersionSet").
		Int("entries", len(set)).
		Msg("version set committed")
	return nil
}
