// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/service"
)

// SyncWorker keeps a ClientSyncJob ticking for the lifetime of Run.
type SyncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
	logger   *logger.Logger
}

func NewSyncWorker(job service.ClientSyncJob, interval time.Duration, logger *logger.Logger) *SyncWorker {
	return &SyncWorker{job: job, interval: interval, logger: logger}
}

func (s *SyncWorker) Run(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("sync worker started")
	s.job.Start(ctx, s.interval)
	<-ctx.Done()
	s.job.Stop()
	s.logger.Info().Msg("sync worker stopped")
	return nil
}
