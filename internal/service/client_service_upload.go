// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-observer-sync/internal/adapter"
	"github.com/MKhiriev/go-observer-sync/internal/config"
	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/store"
	"github.com/MKhiriev/go-observer-sync/models"
)

type uploadPipeline struct {
	localStore store.LocalStore
	remote     adapter.RemoteService
	kinds      []models.RecordKind

	logger *logger.Logger
}

// NewUploadPipeline builds an [UploadPipeline] that pushes records of the
// kinds listed in cfg.RecordKinds one by one. Answers and notes have their
// own steps and are always part of the pass.
func NewUploadPipeline(localStore store.LocalStore, remote adapter.RemoteService, cfg config.ClientSync, logger *logger.Logger) UploadPipeline {
	kinds := make([]models.RecordKind, 0, len(cfg.RecordKinds))
	for _, k := range cfg.RecordKinds {
		kind := models.RecordKind(k)
		if kind == models.KindQuestionAnswer || kind == models.KindNote {
			continue
		}
		kinds = append(kinds, kind)
	}

	return &uploadPipeline{
		localStore: localStore,
		remote:     remote,
		kinds:      kinds,
		logger:     logger,
	}
}

func (p *uploadPipeline) UploadAll(ctx context.Context) models.UploadReport {
	log := logger.FromContextOr(ctx, p.logger)
	var report models.UploadReport

	for _, kind := range p.kinds {
		if ctx.Err() != nil {
			break
		}
		p.uploadRecords(ctx, kind, &report)
	}
	if ctx.Err() == nil {
		p.uploadAnswers(ctx, &report)
	}
	if ctx.Err() == nil {
		p.uploadNotes(ctx, &report)
	}
	if err := ctx.Err(); err != nil {
		log.Warn().Err(err).Str("func", "uploadPipeline.UploadAll").Msg("upload pass interrupted")
	}

	log.Debug().Str("func", "uploadPipeline.UploadAll").
		Int("succeeded", report.Succeeded()).
		Int("failed", report.Failed()).
		Msg("upload pass finished")

	return report
}

func (p *uploadPipeline) uploadRecords(ctx context.Context, kind models.RecordKind, report *models.UploadReport) {
	log := logger.FromContextOr(ctx, p.logger)

	records, err := p.localStore.UnsyncedRecords(ctx, kind)
	if err != nil {
		log.Err(err).Str("func", "uploadPipeline.uploadRecords").Str("kind", kind.String()).Msg("error listing unsynced records")
		report.Add(kind, "", fmt.Errorf("list unsynced %s records: %w", kind, err))
		return
	}

	for _, record := range records {
		if ctx.Err() != nil {
			return
		}

		if err = p.remote.PushRecord(ctx, kind, record.Payload); err != nil {
			log.Err(err).Str("func", "uploadPipeline.uploadRecords").
				Str("kind", kind.String()).
				Str("record_id", record.ID).
				Msg("error pushing record")
			report.Add(kind, record.ID, err)
			continue
		}

		if err = p.localStore.MarkSynced(ctx, record); err != nil {
			log.Err(err).Str("func", "uploadPipeline.uploadRecords").
				Str("kind", kind.String()).
				Str("record_id", record.ID).
				Msg("record pushed but not marked as synced")
			report.Add(kind, record.ID, fmt.Errorf("mark record synced: %w", err))
			continue
		}

		report.Add(kind, record.ID, nil)
	}
}

func (p *uploadPipeline) uploadAnswers(ctx context.Context, report *models.UploadReport) {
	log := logger.FromContextOr(ctx, p.logger)
	kind := models.KindQuestionAnswer

	answers, err := p.localStore.UnsyncedAnswers(ctx)
	if err != nil {
		log.Err(err).Str("func", "uploadPipeline.uploadAnswers").Msg("error listing unsynced answers")
		report.Add(kind, "", fmt.Errorf("list unsynced answers: %w", err))
		return
	}
	if len(answers) == 0 {
		return
	}

	payloads := make([]json.RawMessage, 0, len(answers))
	for _, answer := range answers {
		payloads = append(payloads, answer.Payload)
	}

	if err = p.remote.PushAnswerBatch(ctx, payloads); err != nil {
		log.Err(err).Str("func", "uploadPipeline.uploadAnswers").Int("answers", len(answers)).Msg("error pushing answer batch")
		for _, answer := range answers {
			report.Add(kind, answer.ID, err)
		}
		return
	}

	if err = p.localStore.MarkSynced(ctx, answers...); err != nil {
		log.Err(err).Str("func", "uploadPipeline.uploadAnswers").Int("answers", len(answers)).Msg("answer batch pushed but not marked as synced")
		err = fmt.Errorf("mark answers synced: %w", err)
		for _, answer := range answers {
			report.Add(kind, answer.ID, err)
		}
		return
	}

	for _, answer := range answers {
		report.Add(kind, answer.ID, nil)
	}
}

func (p *uploadPipeline) uploadNotes(ctx context.Context, report *models.UploadReport) {
	log := logger.FromContextOr(ctx, p.logger)
	kind := models.KindNote

	notes, err := p.localStore.Notes(ctx)
	if err != nil {
		log.Err(err).Str("func", "uploadPipeline.uploadNotes").Msg("error listing notes")
		report.Add(kind, "", fmt.Errorf("list notes: %w", err))
		return
	}

	for _, note := range notes {
		if ctx.Err() != nil {
			return
		}

		if err = p.remote.PushNote(ctx, note.Payload); err != nil {
			log.Err(err).Str("func", "uploadPipeline.uploadNotes").Str("record_id", note.ID).Msg("error pushing note")
			report.Add(kind, note.ID, err)
			continue
		}

		if err = p.localStore.DeleteNote(ctx, note); err != nil {
			log.Err(err).Str("func", "uploadPipeline.uploadNotes").Str("record_id", note.ID).Msg("note pushed but not deleted")
			report.Add(kind, note.ID, fmt.Errorf("delete pushed note: %w", err))
			continue
		}

		report.Add(kind, note.ID, nil)
	}
}
