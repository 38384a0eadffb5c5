// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-observer-sync/internal/adapter"
	"github.com/MKhiriev/go-observer-sync/internal/config"
	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/store"
	"github.com/MKhiriev/go-observer-sync/models"
)

// Reconciliation is the result of comparing the remote version set with the
// cached one.
type Reconciliation struct {
	// Stale is true when the sets differ or nothing was cached yet.
	Stale bool
	// Outdated lists, sorted, the keys that must be downloaded.
	Outdated []string
	// Remote is the normalized set advertised by the remote service. It is
	// what gets committed after a fully successful download.
	Remote models.VersionSet
	// Purged is true when cached answers and notes were already dropped.
	Purged bool
}

// Unchanged reports whether the cached reference data is current.
func (r Reconciliation) Unchanged() bool {
	return !r.Stale
}

// Wanted pairs each outdated key with the version the remote advertised.
func (r Reconciliation) Wanted() models.VersionSet {
	wanted := make(models.VersionSet, 0, len(r.Outdated))
	for _, key := range r.Outdated {
		if version, ok := r.Remote.Lookup(key); ok {
			wanted = append(wanted, models.VersionEntry{Key: key, Version: version})
		}
	}
	return wanted
}

type versionReconciler struct {
	localStore         store.LocalStore
	remote             adapter.RemoteService
	invalidateOnCommit bool

	logger *logger.Logger
}

// NewVersionReconciler builds a [VersionReconciler]. Unless
// cfg.InvalidateOnCommit is set, a stale result purges cached answers and
// notes immediately.
func NewVersionReconciler(localStore store.LocalStore, remote adapter.RemoteService, cfg config.ClientSync, logger *logger.Logger) VersionReconciler {
	return &versionReconciler{
		localStore:         localStore,
		remote:             remote,
		invalidateOnCommit: cfg.InvalidateOnCommit,
		logger:             logger,
	}
}

func (r *versionReconciler) Check(ctx context.Context) (Reconciliation, error) {
	log := logger.FromContextOr(ctx, r.logger)

	remote, err := r.remote.FetchVersionSet(ctx)
	if err != nil {
		log.Err(err).Str("func", "versionReconciler.Check").Msg("error fetching remote version set")
		return Reconciliation{}, fmt.Errorf("%w: fetch remote version set: %w", ErrReconciliationAbort, err)
	}
	remote = remote.Normalize()

	cached, ok, err := r.localStore.CachedVersionSet(ctx)
	if err != nil {
		log.Err(err).Str("func", "versionReconciler.Check").Msg("error loading cached version set")
		return Reconciliation{}, fmt.Errorf("%w: load cached version set: %w", ErrReconciliationAbort, err)
	}

	if ok && cached.Equal(remote) {
		log.Debug().Str("func", "versionReconciler.Check").Int("forms", len(remote)).Msg("reference data is current")
		return Reconciliation{Remote: remote}, nil
	}

	result := Reconciliation{
		Stale:    true,
		Outdated: cached.Outdated(remote),
		Remote:   remote,
	}
	log.Info().Str("func", "versionReconciler.Check").
		Bool("cached", ok).
		Strs("outdated", result.Outdated).
		Msg("reference data is stale")

	if r.invalidateOnCommit {
		return result, nil
	}

	if err = r.localStore.PurgeAnswersAndNotes(ctx); err != nil {
		log.Err(err).Str("func", "versionReconciler.Check").Msg("error purging cached answers and notes")
		return Reconciliation{}, fmt.Errorf("%w: purge answers and notes: %w", ErrReconciliationAbort, err)
	}
	result.Purged = true

	return result, nil
}
