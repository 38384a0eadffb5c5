// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-observer-sync/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRecord() models.SyncableRecord {
	return models.SyncableRecord{
		ID:      "0192f1c4-7b6e-7c3a-9a10-1d2e3f405162",
		Kind:    models.KindBranchDetails,
		Payload: json.RawMessage(`{"branch":"12"}`),
	}
}

const validHash = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

// ---------------------------------------------------------------------------
// Validate dispatch
// ---------------------------------------------------------------------------

func TestRecordValidator_UnsupportedType(t *testing.T) {
	v := NewRecordValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestRecordValidator_PointerAndValue(t *testing.T) {
	v := NewRecordValidator()
	rec := validRecord()

	require.NoError(t, v.Validate(context.Background(), rec))
	require.NoError(t, v.Validate(context.Background(), &rec))
}

// ---------------------------------------------------------------------------
// SyncableRecord
// ---------------------------------------------------------------------------

func TestRecordValidator_Record(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.SyncableRecord)
		fields  []string
		wantErr error
	}{
		{"valid", func(r *models.SyncableRecord) {}, nil, nil},
		{"bad id", func(r *models.SyncableRecord) { r.ID = "not-a-uuid" }, nil, ErrInvalidRecordID},
		{"empty id", func(r *models.SyncableRecord) { r.ID = "" }, nil, ErrInvalidRecordID},
		{"unknown kind", func(r *models.SyncableRecord) { r.Kind = "ballot" }, nil, ErrInvalidKind},
		{"empty payload", func(r *models.SyncableRecord) { r.Payload = nil }, nil, ErrEmptyPayload},
		{"broken payload", func(r *models.SyncableRecord) { r.Payload = json.RawMessage(`{"a":`) }, nil, ErrInvalidPayload},
		{"id skipped by scope", func(r *models.SyncableRecord) { r.ID = "" }, []string{FieldKind, FieldPayload}, nil},
		{"unknown field", func(r *models.SyncableRecord) {}, []string{"colour"}, ErrUnknownField},
	}

	v := NewRecordValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)

			err := v.Validate(context.Background(), rec, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// RecordPushRequest
// ---------------------------------------------------------------------------

func TestRecordValidator_PushRequest(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	ok := models.RecordPushRequest{Payload: json.RawMessage(`{"a":1}`), Hash: validHash}
	assert.NoError(t, v.Validate(ctx, ok))

	noHash := ok
	noHash.Hash = ""
	assert.ErrorIs(t, v.Validate(ctx, noHash), ErrInvalidHash)

	notHex := ok
	notHex.Hash = "zz"
	assert.ErrorIs(t, v.Validate(ctx, &notHex), ErrInvalidHash)

	assert.NoError(t, v.Validate(ctx, noHash, FieldPayload))
}

// ---------------------------------------------------------------------------
// AnswerBatchRequest
// ---------------------------------------------------------------------------

func TestRecordValidator_AnswerBatch(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()
	answers := []json.RawMessage{json.RawMessage(`{"q":1}`), json.RawMessage(`{"q":2}`)}

	assert.NoError(t, v.Validate(ctx, models.AnswerBatchRequest{Answers: answers, Length: 2, Hash: validHash}))
	assert.ErrorIs(t, v.Validate(ctx, models.AnswerBatchRequest{Length: 0, Hash: validHash}), ErrEmptyAnswers)
	assert.ErrorIs(t, v.Validate(ctx, models.AnswerBatchRequest{Answers: answers, Length: 3, Hash: validHash}), ErrInvalidLength)

	broken := []json.RawMessage{json.RawMessage(`{"q":1}`), json.RawMessage(`nope`)}
	err := v.Validate(ctx, models.AnswerBatchRequest{Answers: broken, Length: 2}, FieldAnswers)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.Contains(t, err.Error(), "answer 1")
}

// ---------------------------------------------------------------------------
// ReferenceItem
// ---------------------------------------------------------------------------

func TestRecordValidator_ReferenceItem(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	item := models.ReferenceItem{Key: "A", Version: "v1", Payload: json.RawMessage(`{"questions":[]}`)}
	assert.NoError(t, v.Validate(ctx, item))

	noKey := item
	noKey.Key = ""
	assert.ErrorIs(t, v.Validate(ctx, noKey), ErrInvalidReferenceKey)

	noVersion := item
	noVersion.Version = ""
	assert.ErrorIs(t, v.Validate(ctx, &noVersion), ErrInvalidVersion)
}
