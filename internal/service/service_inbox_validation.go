// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-observer-sync/internal/validators"
	"github.com/MKhiriev/go-observer-sync/models"
)

// InboxServiceWrapper defines middleware composition for InboxService.
type InboxServiceWrapper interface {
	Wrap(InboxService) InboxService // returns a decorated InboxService applying additional behavior
}

// InboxValidationService rejects malformed uploads before they reach the
// wrapped InboxService.
type InboxValidationService struct {
	inner     InboxService
	validator validators.Validator
}

func NewInboxValidationService() InboxServiceWrapper {
	return &InboxValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *InboxValidationService) AcceptRecord(ctx context.Context, observerID string, kind models.RecordKind, payload json.RawMessage) error {
	if observerID == "" {
		return ErrNoObserverID
	}
	if kind == models.KindQuestionAnswer {
		return fmt.Errorf("%w: answers are accepted in batches only", ErrInvalidDataProvided)
	}

	record := models.SyncableRecord{Kind: kind, Payload: payload}
	if err := v.validator.Validate(ctx, record, validators.FieldKind, validators.FieldPayload); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.AcceptRecord(ctx, observerID, kind, payload)
}

func (v *InboxValidationService) AcceptAnswers(ctx context.Context, observerID string, batch models.AnswerBatchRequest) error {
	if observerID == "" {
		return ErrNoObserverID
	}
	if len(batch.Answers) == 0 {
		return ErrEmptyAnswerBatch
	}

	if err := v.validator.Validate(ctx, batch, validators.FieldAnswers, validators.FieldLength); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.AcceptAnswers(ctx, observerID, batch)
}

func (v *InboxValidationService) Entries(ctx context.Context, observerID string) ([]models.InboxEntry, error) {
	if observerID == "" {
		return nil, ErrNoObserverID
	}
	return v.inner.Entries(ctx, observerID)
}

func (v *InboxValidationService) Wrap(inner InboxService) InboxService {
	v.inner = inner
	return v
}
