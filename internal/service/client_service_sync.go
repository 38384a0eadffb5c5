// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/store"
	"github.com/MKhiriev/go-observer-sync/internal/utils"
	"github.com/MKhiriev/go-observer-sync/models"
)

// SyncState is the phase an orchestrator is in.
type SyncState int32

const (
	StateIdle SyncState = iota
	StateUploading
	StateReconciling
	StateFetching
)

func (s SyncState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateUploading:
		return "uploading"
	case StateReconciling:
		return "reconciling"
	case StateFetching:
		return "fetching"
	}
	return fmt.Sprintf("SyncState(%d)", int32(s))
}

type idGenerator interface {
	Generate() string
}

type syncOrchestrator struct {
	localStore store.LocalStore
	uploader   UploadPipeline
	reconciler VersionReconciler
	fetcher    FetchCoordinator

	ids   idGenerator
	now   func() time.Time
	state atomic.Int32

	logger *logger.Logger
}

// NewSyncOrchestrator wires the three phases into a [SyncOrchestrator].
// The orchestrator keeps no state between rounds apart from its phase.
func NewSyncOrchestrator(localStore store.LocalStore, uploader UploadPipeline, reconciler VersionReconciler,
	fetcher FetchCoordinator, logger *logger.Logger) SyncOrchestrator {
	return &syncOrchestrator{
		localStore: localStore,
		uploader:   uploader,
		reconciler: reconciler,
		fetcher:    fetcher,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *syncOrchestrator) RunUploadOnly(ctx context.Context, notify CompletionFunc) (models.SyncOutcome, error) {
	return s.run(ctx, models.SyncModeUpload, notify)
}

func (s *syncOrchestrator) RunFullSync(ctx context.Context, notify CompletionFunc) (models.SyncOutcome, error) {
	return s.run(ctx, models.SyncModeFull, notify)
}

func (s *syncOrchestrator) State() SyncState {
	return SyncState(s.state.Load())
}

// run executes one round. The returned error is the failure reason of the
// round; partial upload failures are reported through outcome.Upload only.
func (s *syncOrchestrator) run(ctx context.Context, mode models.SyncMode, notify CompletionFunc) (models.SyncOutcome, error) {
	if !s.state.CompareAndSwap(int32(StateIdle), int32(StateUploading)) {
		s.logger.Warn().Str("func", "syncOrchestrator.run").
			Str("mode", string(mode)).
			Str("state", s.State().String()).
			Msg("sync round rejected")
		return models.SyncOutcome{}, ErrSyncInProgress
	}

	ctx = s.logger.ContextWith(ctx, "round_id", s.ids.Generate())
	log := logger.FromContextOr(ctx, s.logger)
	log.Info().Str("func", "syncOrchestrator.run").Str("mode", string(mode)).Msg("sync round started")

	outcome := models.SyncOutcome{Mode: mode, StartedAt: s.now()}
	func() {
		defer s.state.Store(int32(StateIdle))
		s.round(ctx, &outcome)
	}()
	outcome.FinishedAt = s.now()

	var event *zerolog.Event
	if outcome.Failed() {
		event = log.Err(outcome.Err)
	} else {
		event = log.Info()
	}
	event.Str("func", "syncOrchestrator.run").
		Str("mode", string(mode)).
		Str("status", string(outcome.Status)).
		Int("uploaded", outcome.Upload.Succeeded()).
		Int("upload_failed", outcome.Upload.Failed()).
		Dur("took", outcome.FinishedAt.Sub(outcome.StartedAt)).
		Msg("sync round finished")

	if notify != nil {
		notify(outcome)
	}

	return outcome, outcome.Err
}

func (s *syncOrchestrator) round(ctx context.Context, outcome *models.SyncOutcome) {
	log := logger.FromContextOr(ctx, s.logger)

	outcome.Upload = s.uploader.UploadAll(ctx)
	if err := UploadError(outcome.Upload); err != nil {
		log.Warn().Err(err).Str("func", "syncOrchestrator.round").Msg("upload finished with failures")
	}
	if err := ctx.Err(); err != nil {
		fail(outcome, fmt.Errorf("upload interrupted: %w", err))
		return
	}
	if outcome.Mode == models.SyncModeUpload {
		outcome.Status = models.SyncStatusNoop
		return
	}

	s.state.Store(int32(StateReconciling))
	reconciliation, err := s.reconciler.Check(ctx)
	if err != nil {
		fail(outcome, err)
		return
	}
	if reconciliation.Unchanged() {
		outcome.Status = models.SyncStatusNoop
		return
	}

	s.state.Store(int32(StateFetching))
	outcome.Fetch = s.fetcher.FetchAll(ctx, reconciliation.Wanted())
	if err = FetchError(outcome.Fetch); err != nil {
		fail(outcome, err)
		return
	}

	if !reconciliation.Purged {
		if err = s.localStore.PurgeAnswersAndNotes(ctx); err != nil {
			log.Err(err).Str("func", "syncOrchestrator.round").Msg("error purging answers and notes before commit")
			fail(outcome, fmt.Errorf("%w: purge answers and notes: %w", ErrReconciliationAbort, err))
			return
		}
	}

	if err = s.localStore.CommitVersionSet(ctx, reconciliation.Remote); err != nil {
		log.Err(err).Str("func", "syncOrchestrator.round").Msg("error committing version set")
		fail(outcome, fmt.Errorf("%w: %w", ErrCommitVersionSet, err))
		return
	}

	outcome.Status = models.SyncStatusRefreshed
}

func fail(outcome *models.SyncOutcome, err error) {
	outcome.Status = models.SyncStatusFailed
	outcome.Err = err
}
