// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/store"
	"github.com/MKhiriev/go-observer-sync/models"
)

type inboxService struct {
	inbox store.Inbox

	logger *logger.Logger
}

// NewInboxService returns an [InboxService] storing into inbox. Input is
// expected to be validated by the wrapper from NewInboxValidationService.
func NewInboxService(inbox store.Inbox, logger *logger.Logger) InboxService {
	return &inboxService{
		inbox:  inbox,
		logger: logger,
	}
}

func (s *inboxService) AcceptRecord(ctx context.Context, observerID string, kind models.RecordKind, payload json.RawMessage) error {
	if err := s.inbox.Append(ctx, observerID, kind, payload); err != nil {
		s.logger.Err(err).Str("func", "inboxService.AcceptRecord").Str("kind", kind.String()).Msg("error storing record")
		return err
	}
	return nil
}

// AcceptAnswers stores the whole batch in one append.
func (s *inboxService) AcceptAnswers(ctx context.Context, observerID string, batch models.AnswerBatchRequest) error {
	if err := s.inbox.Append(ctx, observerID, models.KindQuestionAnswer, batch.Answers...); err != nil {
		s.logger.Err(err).Str("func", "inboxService.AcceptAnswers").Int("answers", len(batch.Answers)).Msg("error storing answers")
		return err
	}
	return nil
}

func (s *inboxService) Entries(ctx context.Context, observerID string) ([]models.InboxEntry, error) {
	return s.inbox.Entries(ctx, observerID)
}
