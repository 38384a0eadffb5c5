// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

var knownRecordKinds = map[string]struct{}{
	"branch_details":  {},
	"question_answer": {},
	"note":            {},
}

// validate checks source-independent invariants of the merged
// [StructuredConfig]. Role-specific requirements are checked by the views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.MaxConcurrentFetches < 0 || cfg.Sync.FetchTimeout < 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Adapter.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.HashKey == "" || cfg.App.Token == "" {
		return ErrInvalidAppConfigs
	}

	switch cfg.Sync.Mode {
	case ModeUpload, ModeFull:
	case ModeWatch:
		if cfg.Workers.SyncInterval <= 0 {
			return ErrInvalidWorkerConfigs
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidSyncConfigs, cfg.Sync.Mode)
	}

	for _, kind := range cfg.Sync.RecordKinds {
		if _, ok := knownRecordKinds[kind]; !ok {
			return fmt.Errorf("%w: unknown record kind %q", ErrInvalidSyncConfigs, kind)
		}
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.ReferenceFile == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.HashKey == "" || cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
