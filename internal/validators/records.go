// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-observer-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the client-generated record identifier.
	FieldID = "id"

	// FieldKind targets the record kind.
	FieldKind = "kind"

	// FieldPayload targets the JSON payload of a record or push request.
	FieldPayload = "payload"

	// FieldHash targets the hex HMAC of a push request body.
	FieldHash = "hash"

	// FieldAnswers targets the entries of an answer batch.
	FieldAnswers = "answers"

	// FieldLength targets the declared size of an answer batch.
	FieldLength = "length"

	// FieldKey targets the key of a reference item.
	FieldKey = "key"

	// FieldVersion targets the version token of a reference item.
	FieldVersion = "version"
)

// RecordValidator implements [Validator] for models.SyncableRecord,
// models.RecordPushRequest, models.AnswerBatchRequest and
// models.ReferenceItem, by value or by pointer.
type RecordValidator struct {
}

// NewRecordValidator constructs a RecordValidator.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches on the dynamic type of obj. When fields is empty the
// default set of the type is validated.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncableRecord:
		return v.validateRecord(value, fields...)
	case *models.SyncableRecord:
		return v.validateRecord(*value, fields...)

	case models.RecordPushRequest:
		return v.validatePushRequest(value, fields...)
	case *models.RecordPushRequest:
		return v.validatePushRequest(*value, fields...)

	case models.AnswerBatchRequest:
		return v.validateAnswerBatch(value, fields...)
	case *models.AnswerBatchRequest:
		return v.validateAnswerBatch(*value, fields...)

	case models.ReferenceItem:
		return v.validateReferenceItem(value, fields...)
	case *models.ReferenceItem:
		return v.validateReferenceItem(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRecord checks ID, Kind and Payload by default.
func (v *RecordValidator) validateRecord(record models.SyncableRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldKind, FieldPayload}
	}

	for _, field := range fields {
		switch field {
		case FieldID:
			if err := uuid.Validate(record.ID); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidRecordID, err)
			}
		case FieldKind:
			if !record.Kind.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidKind, record.Kind)
			}
		case FieldPayload:
			if err := validatePayload(record.Payload); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validatePushRequest checks Payload and Hash by default.
func (v *RecordValidator) validatePushRequest(request models.RecordPushRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPayload, FieldHash}
	}

	for _, field := range fields {
		switch field {
		case FieldPayload:
			if err := validatePayload(request.Payload); err != nil {
				return err
			}
		case FieldHash:
			if err := validateHash(request.Hash); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateAnswerBatch checks Answers, Length and Hash by default.
func (v *RecordValidator) validateAnswerBatch(batch models.AnswerBatchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnswers, FieldLength, FieldHash}
	}

	for _, field := range fields {
		switch field {
		case FieldAnswers:
			if len(batch.Answers) == 0 {
				return ErrEmptyAnswers
			}
			for i, answer := range batch.Answers {
				if err := validatePayload(answer); err != nil {
					return fmt.Errorf("answer %d: %w", i, err)
				}
			}
		case FieldLength:
			if batch.Length != len(batch.Answers) {
				return fmt.Errorf("%w: declared %d, got %d", ErrInvalidLength, batch.Length, len(batch.Answers))
			}
		case FieldHash:
			if err := validateHash(batch.Hash); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateReferenceItem checks Key, Version and Payload by default.
func (v *RecordValidator) validateReferenceItem(item models.ReferenceItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldVersion, FieldPayload}
	}

	for _, field := range fields {
		switch field {
		case FieldKey:
			if item.Key == "" {
				return ErrInvalidReferenceKey
			}
		case FieldVersion:
			if item.Version == "" {
				return ErrInvalidVersion
			}
		case FieldPayload:
			if err := validatePayload(item.Payload); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validatePayload(payload json.RawMessage) error {
	if len(payload) == 0 {
		return ErrEmptyPayload
	}
	if !json.Valid(payload) {
		return ErrInvalidPayload
	}
	return nil
}

func validateHash(hash string) error {
	if hash == "" {
		return ErrInvalidHash
	}
	if _, err := hex.DecodeString(hash); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	return nil
}
