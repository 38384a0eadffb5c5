// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Sync modes accepted by the client.
const (
	ModeUpload = "upload"
	ModeFull   = "full"
	ModeWatch  = "watch"
)

const (
	defaultClientRequestTimeout = 30 * time.Second
	defaultClientSyncInterval   = time.Minute
	defaultRecordKind           = "branch_details"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used for upload integrity hashes.
	HashKey string
	// Token is the bearer token presented to the remote service.
	Token string
	// Version is the client build version.
	Version string
	// LogFile is the client log file path.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// RetryCount is the number of transport retries per request.
	RetryCount int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync holds the tuning of a sync round.
type ClientSync struct {
	Mode                 string
	FetchTimeout         time.Duration
	MaxConcurrentFetches int
	CancelOnFailure      bool
	InvalidateOnCommit   bool
	RecordKinds          []string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the watch mode triggers a full sync.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    ClientSync
	Workers ClientWorkers
	// Args holds the positional sub-command arguments.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults and validates the
// resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			Token:   cfg.App.Token,
			Version: cfg.App.Version,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryCount:     cfg.Adapter.RetryCount,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Sync: ClientSync{
			Mode:                 cfg.Sync.Mode,
			FetchTimeout:         cfg.Sync.FetchTimeout,
			MaxConcurrentFetches: cfg.Sync.MaxConcurrentFetches,
			CancelOnFailure:      !cfg.Sync.ContinueOnFailure,
			InvalidateOnCommit:   cfg.Sync.InvalidateOnCommit,
			RecordKinds:          cfg.Sync.RecordKinds,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Args:    cfg.Args,
	}

	if clientCfg.Sync.Mode == "" {
		clientCfg.Sync.Mode = ModeFull
	}
	if len(clientCfg.Sync.RecordKinds) == 0 {
		clientCfg.Sync.RecordKinds = []string{defaultRecordKind}
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultClientRequestTimeout
	}
	if clientCfg.Workers.SyncInterval == 0 {
		clientCfg.Workers.SyncInterval = defaultClientSyncInterval
	}

	return clientCfg
}
