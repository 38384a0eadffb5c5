// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/models"
)

// referenceFile is the on-disk layout of the reference data file:
//
//	{"forms": [{"key": "f1", "version": "3", "payload": {...}}]}
type referenceFile struct {
	Forms []models.ReferenceItem `json:"forms"`
}

// fileReferenceCatalog serves reference items loaded once from a JSON file.
type fileReferenceCatalog struct {
	items  map[string]models.ReferenceItem
	set    models.VersionSet
	logger *logger.Logger
}

// NewFileReferenceCatalog reads the reference data file at path.
func NewFileReferenceCatalog(path string, log *logger.Logger) (ReferenceCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Err(err).Str("func", "NewFileReferenceCatalog").Str("path", path).Msg("error reading reference file")
		return nil, fmt.Errorf("read reference file: %w", err)
	}

	var file referenceFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Err(err).Str("func", "NewFileReferenceCatalog").Str("path", path).Msg("error decoding reference file")
		return nil, fmt.Errorf("decode reference file: %w", err)
	}

	return newReferenceCatalog(file.Forms, log), nil
}

func newReferenceCatalog(forms []models.ReferenceItem, log *logger.Logger) *fileReferenceCatalog {
	c := &fileReferenceCatalog{
		items:  make(map[string]models.ReferenceItem, len(forms)),
		logger: log,
	}

	set := make(models.VersionSet, 0, len(forms))
	for _, f := range forms {
		c.items[f.Key] = f
		set = append(set, models.VersionEntry{Key: f.Key, Version: f.Version})
	}
	c.set = set.Normalize()

	log.Info().
		Str("func", "newReferenceCatalog").
		Int("forms", len(c.set)).
		Msg("reference catalog loaded")
	return c
}

func (c *fileReferenceCatalog) VersionSet(ctx context.Context) (models.VersionSet, error) {
	out := make(models.VersionSet, len(c.set))
	copy(out, c.set)
	return out, nil
}

func (c *fileReferenceCatalog) Item(ctx context.Context, key string) (models.ReferenceItem, error) {
	item, ok := c.items[key]
	if !ok {
		return models.ReferenceItem{}, fmt.Errorf("%w (key=%s)", ErrReferenceItemNotFound, key)
	}
	return item, nil
}
