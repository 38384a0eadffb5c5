// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
)

// localStore is the SQLite implementation of [LocalStore]. Its methods are
// split by concern across local_store_*.go files.
type localStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalStore returns a [LocalStore] backed by db. The schema must already
// be migrated.
func NewLocalStore(db *DB, logger *logger.Logger) LocalStore {
	return &localStore{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}
