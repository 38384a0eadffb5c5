// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
)

// Storages groups the reference server's storage.
type Storages struct {
	Inbox   Inbox
	Catalog ReferenceCatalog
}

// NewStorages loads the reference catalog from referenceFile and creates an
// empty inbox.
func NewStorages(referenceFile string, logger *logger.Logger) (*Storages, error) {
	catalog, err := NewFileReferenceCatalog(referenceFile, logger)
	if err != nil {
		return nil, fmt.Errorf("reference catalog: %w", err)
	}

	return &Storages{
		Inbox:   NewMemoryInbox(logger),
		Catalog: catalog,
	}, nil
}
