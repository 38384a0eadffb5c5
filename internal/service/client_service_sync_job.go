// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	orchestrator SyncOrchestrator
	notify       CompletionFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that calls RunFullSync on a
// ticker and hands every outcome to notify. The job is idle until Start is
// called.
func NewClientSyncJob(orchestrator SyncOrchestrator, notify CompletionFunc, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		orchestrator: orchestrator,
		notify:       notify,
		logger:       logger,
	}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that calls RunFullSync every interval.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *clientSyncJob) tick(ctx context.Context) {
	_, err := j.orchestrator.RunFullSync(ctx, j.notify)
	switch {
	case errors.Is(err, ErrSyncInProgress):
		j.logger.Debug().Str("func", "clientSyncJob.tick").Msg("previous round still running, tick skipped")
	case err != nil:
		j.logger.Warn().Err(err).Str("func", "clientSyncJob.tick").Msg("scheduled sync round failed")
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's
// context and blocks until the goroutine has exited. Calling Stop on a job
// that is not running is a no-op.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
