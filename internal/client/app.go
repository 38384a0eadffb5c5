// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-observer-sync/internal/config"
	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/service"
	"github.com/MKhiriev/go-observer-sync/internal/workers"
	"github.com/MKhiriev/go-observer-sync/models"
)

const (
	commandAdd     = "add"
	commandVersion = "version"
)

type App struct {
	services *service.ClientServices
	cfg      *config.ClientConfig
	out      io.Writer
	report   service.CompletionFunc

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) *App {
	return &App{
		services: services,
		cfg:      cfg,
		out:      out,
		report:   Report(out),
		logger:   logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	if len(a.cfg.Args) > 0 {
		switch a.cfg.Args[0] {
		case commandAdd:
			return a.add(ctx, a.cfg.Args[1:])
		case commandVersion:
			return a.version(ctx)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownCommand, a.cfg.Args[0])
		}
	}

	switch a.cfg.Sync.Mode {
	case config.ModeUpload:
		_, err := a.services.Orchestrator.RunUploadOnly(ctx, a.report)
		return err
	case config.ModeFull:
		_, err := a.services.Orchestrator.RunFullSync(ctx, a.report)
		return err
	case config.ModeWatch:
		return a.watch(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, a.cfg.Sync.Mode)
	}
}

// watch runs one full round immediately and then keeps the ticker job
// running until ctx is cancelled.
func (a *App) watch(ctx context.Context) error {
	if _, err := a.services.Orchestrator.RunFullSync(ctx, a.report); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.watch").Msg("initial sync round failed")
	}

	return workers.NewWorkers(
		workers.NewSyncWorker(a.services.SyncJob, a.cfg.Workers.SyncInterval, a.logger),
	).Run(ctx)
}

func (a *App) add(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}

	payload, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	record, err := a.services.RecordService.Add(ctx, models.RecordKind(args[0]), json.RawMessage(payload))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "queued %s %s\n", record.Kind, record.ID)
	return nil
}

func (a *App) version(ctx context.Context) error {
	serverVersion, err := a.services.AppInfo.GetServerVersion(ctx)
	if err != nil {
		return fmt.Errorf("get server version: %w", err)
	}

	fmt.Fprintf(a.out, "client %s\nserver %s\n", a.cfg.App.Version, serverVersion)
	return nil
}

// Report returns a CompletionFunc printing a one-line summary of a finished
// round to out, followed by its upload failures and terminal error.
func Report(out io.Writer) service.CompletionFunc {
	return func(outcome models.SyncOutcome) {
		printOutcome(out, outcome)
	}
}

func printOutcome(out io.Writer, outcome models.SyncOutcome) {
	fmt.Fprintf(out, "%s sync %s in %s: uploaded %d/%d",
		outcome.Mode, outcome.Status, outcome.FinishedAt.Sub(outcome.StartedAt).Round(time.Millisecond),
		outcome.Upload.Succeeded(), len(outcome.Upload.Results))
	if outcome.Fetch.Issued > 0 {
		fmt.Fprintf(out, ", fetched %d/%d", outcome.Fetch.Resolved-len(outcome.Fetch.Failures()), outcome.Fetch.Issued)
	}
	fmt.Fprintln(out)

	if err := service.UploadError(outcome.Upload); err != nil {
		fmt.Fprintf(out, "  upload: %v\n", err)
	}
	if outcome.Err != nil {
		fmt.Fprintf(out, "  error: %v\n", outcome.Err)
	}
}
