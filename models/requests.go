// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// RecordPushRequest is the body of POST /api/records/{kind} and POST /api/notes.
type RecordPushRequest struct {
	// Payload is the kind-specific record body.
	Payload json.RawMessage `json:"payload"`

	// Hash is the keyed digest of Payload.
	Hash string `json:"hash"`
}

// AnswerBatchRequest is the body of POST /api/answers.
type AnswerBatchRequest struct {
	// Answers holds every unsynced answer of the round.
	Answers []json.RawMessage `json:"answers"`

	// Length is the total number of entries in Answers.
	Length int `json:"length"`

	// Hash is the keyed digest of Answers.
	Hash string `json:"hash"`
}

// VersionResponse is the body of GET /api/forms/version.
type VersionResponse struct {
	Versions VersionSet `json:"versions"`
}
