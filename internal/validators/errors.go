// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRecordID     = errors.New("invalid record ID")
	ErrInvalidKind         = errors.New("invalid record kind")
	ErrEmptyPayload        = errors.New("payload is required")
	ErrInvalidPayload      = errors.New("payload is not valid JSON")
	ErrInvalidHash         = errors.New("invalid hash")
	ErrEmptyAnswers        = errors.New("answers list cannot be empty")
	ErrInvalidLength       = errors.New("declared length does not match")
	ErrInvalidReferenceKey = errors.New("invalid reference key")
	ErrInvalidVersion      = errors.New("invalid version")
)
