// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-observer-sync/internal/adapter"
	"github.com/MKhiriev/go-observer-sync/internal/config"
	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/store"
)

type ClientServices struct {
	Uploader      UploadPipeline
	Reconciler    VersionReconciler
	Fetcher       FetchCoordinator
	Orchestrator  SyncOrchestrator
	RecordService RecordService
	SyncJob       ClientSyncJob
	AppInfo       ClientAppInfoService
}

// NewClientServices wires the client side. notify receives the outcome of
// every round started by SyncJob.
func NewClientServices(localStore store.LocalStore, remote adapter.RemoteService, cfg config.ClientSync,
	notify CompletionFunc, logger *logger.Logger) *ClientServices {
	uploader := NewUploadPipeline(localStore, remote, cfg, logger)
	reconciler := NewVersionReconciler(localStore, remote, cfg, logger)
	fetcher := NewFetchCoordinator(localStore, remote, cfg, logger)
	orchestrator := NewSyncOrchestrator(localStore, uploader, reconciler, fetcher, logger)

	return &ClientServices{
		Uploader:      uploader,
		Reconciler:    reconciler,
		Fetcher:       fetcher,
		Orchestrator:  orchestrator,
		RecordService: NewRecordService(localStore, logger),
		SyncJob:       NewClientSyncJob(orchestrator, notify, logger),
		AppInfo:       NewClientAppInfoService(remote, logger),
	}
}
