// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-observer-sync/models"
)

// UploadPipeline drains the local unsynced queues into the remote service.
type UploadPipeline interface {
	// UploadAll pushes every unsynced record of the configured kinds, then
	// the pending answers as one batch, then the stored notes. A failed
	// record is recorded in the report and the pipeline moves on; nothing is
	// retried inside one call. Cancelling ctx stops the pass between
	// records.
	UploadAll(ctx context.Context) models.UploadReport
}

// VersionReconciler decides whether the cached reference data is stale.
type VersionReconciler interface {
	// Check compares the remote version set against the cached one. When
	// they differ the result is stale and, unless the purge is deferred to
	// commit, cached answers and notes are dropped before Check returns.
	// Any failure is reported as ErrReconciliationAbort.
	Check(ctx context.Context) (Reconciliation, error)
}

// ClientAppInfoService reports build metadata of the remote server.
type ClientAppInfoService interface {
	GetServerVersion(ctx context.Context) (string, error)
}

// FetchCoordinator downloads a set of reference items concurrently.
type FetchCoordinator interface {
	// FetchAll fetches and persists every entry of wanted. An item whose
	// version differs from the wanted one is rejected. The returned report
	// accounts for each key exactly once.
	FetchAll(ctx context.Context, wanted models.VersionSet) models.FetchReport
}

// CompletionFunc receives the terminal outcome of an accepted sync round.
type CompletionFunc func(outcome models.SyncOutcome)

// SyncOrchestrator runs sync rounds, one at a time.
type SyncOrchestrator interface {
	// RunUploadOnly runs the upload phase only. The outcome status is noop
	// unless the round fails to start.
	RunUploadOnly(ctx context.Context, notify CompletionFunc) (models.SyncOutcome, error)

	// RunFullSync runs upload, version reconciliation and, when the cached
	// set is stale, the download phase followed by the commit.
	//
	// A call made while another round is active returns ErrSyncInProgress
	// and does not invoke notify.
	RunFullSync(ctx context.Context, notify CompletionFunc) (models.SyncOutcome, error)

	// State returns the current phase of the orchestrator.
	State() SyncState
}

// RecordService enqueues locally created records.
type RecordService interface {
	// Add stores payload as a new unsynced record of kind and returns it.
	Add(ctx context.Context, kind models.RecordKind, payload json.RawMessage) (models.SyncableRecord, error)
}

// ClientSyncJob defines the contract for a background worker that
// periodically calls RunFullSync.
type ClientSyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
