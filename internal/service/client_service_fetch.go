// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-observer-sync/internal/adapter"
	"github.com/MKhiriev/go-observer-sync/internal/config"
	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/store"
	"github.com/MKhiriev/go-observer-sync/internal/validators"
	"github.com/MKhiriev/go-observer-sync/models"
)

type fetchCoordinator struct {
	localStore      store.LocalStore
	remote          adapter.RemoteService
	fetchTimeout    time.Duration
	maxConcurrent   int
	cancelOnFailure bool
	validator       validators.Validator

	logger *logger.Logger
}

// NewFetchCoordinator builds a [FetchCoordinator]. A zero
// cfg.MaxConcurrentFetches starts every fetch at once; a zero
// cfg.FetchTimeout leaves single fetches bounded only by the round context.
func NewFetchCoordinator(localStore store.LocalStore, remote adapter.RemoteService, cfg config.ClientSync, logger *logger.Logger) FetchCoordinator {
	return &fetchCoordinator{
		localStore:      localStore,
		remote:          remote,
		fetchTimeout:    cfg.FetchTimeout,
		maxConcurrent:   cfg.MaxConcurrentFetches,
		cancelOnFailure: cfg.CancelOnFailure,
		validator:       validators.NewRecordValidator(),
		logger:          logger,
	}
}

// fetchAccumulator collects resolutions from the fetch goroutines.
type fetchAccumulator struct {
	mu     sync.Mutex
	report models.FetchReport
}

func (a *fetchAccumulator) resolve(key string, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.report.Resolved++
	a.report.Results = append(a.report.Results, models.FetchResult{Key: key, Err: err})
}

func (a *fetchAccumulator) snapshot() models.FetchReport {
	a.mu.Lock()
	defer a.mu.Unlock()

	report := a.report
	report.Results = slices.Clone(a.report.Results)
	slices.SortFunc(report.Results, func(x, y models.FetchResult) int {
		return strings.Compare(x.Key, y.Key)
	})
	return report
}

func (c *fetchCoordinator) FetchAll(ctx context.Context, wanted models.VersionSet) models.FetchReport {
	log := logger.FromContextOr(ctx, c.logger)
	acc := &fetchAccumulator{report: models.FetchReport{Issued: len(wanted)}}
	if len(wanted) == 0 {
		return acc.snapshot()
	}

	g, runCtx := &errgroup.Group{}, ctx
	if c.cancelOnFailure {
		g, runCtx = errgroup.WithContext(ctx)
	}
	if c.maxConcurrent > 0 {
		g.SetLimit(c.maxConcurrent)
	}

	for _, entry := range wanted {
		g.Go(func() error {
			err := c.fetchOne(runCtx, entry)
			acc.resolve(entry.Key, err)
			if err != nil {
				log.Err(err).Str("func", "fetchCoordinator.FetchAll").Str("key", entry.Key).Msg("error fetching reference item")
				if c.cancelOnFailure {
					return err
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	report := acc.snapshot()
	log.Info().Str("func", "fetchCoordinator.FetchAll").
		Int("issued", report.Issued).
		Int("resolved", report.Resolved).
		Int("failed", len(report.Failures())).
		Msg("fetch round resolved")

	return report
}

func (c *fetchCoordinator) fetchOne(ctx context.Context, entry models.VersionEntry) error {
	key := entry.Key
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("fetch %s not started: %w", key, err)
	}

	if c.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.fetchTimeout)
		defer cancel()
	}

	item, err := c.remote.FetchReferenceItem(ctx, key)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", key, err)
	}
	if err = c.validator.Validate(ctx, item); err != nil {
		return fmt.Errorf("invalid reference item %s: %w", key, err)
	}
	if item.Key != key || item.Version != entry.Version {
		return fmt.Errorf("%w: want %s@%s, got %s@%s", ErrReferenceVersionMismatch, key, entry.Version, item.Key, item.Version)
	}

	if err = c.localStore.SaveReferenceItem(ctx, item); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	return nil
}
