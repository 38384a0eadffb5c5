// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// RecordKind names one family of locally created records. Every kind is
// pushed to its own endpoint on the remote service.
type RecordKind string

const (
	// KindBranchDetails is the polling-station (branch) detail record filled
	// in by an observer on arrival.
	KindBranchDetails RecordKind = "branch_details"

	// KindQuestionAnswer is an answer to a single form question. Answers are
	// pushed as one aggregate batch per round.
	KindQuestionAnswer RecordKind = "question_answer"

	// KindNote is a free-form note attached to a form question. Notes are
	// deleted locally once the server has accepted them.
	KindNote RecordKind = "note"
)

// String implements fmt.Stringer.
func (k RecordKind) String() string {
	return string(k)
}

// Valid reports whether k is one of the known record kinds.
func (k RecordKind) Valid() bool {
	switch k {
	case KindBranchDetails, KindQuestionAnswer, KindNote:
		return true
	}
	return false
}

// SyncableRecord is a locally created record waiting to be pushed upward.
//
// Synced flips from false to true exactly once, after the remote service has
// confirmed the push. It never reverts; a record leaves the unsynced queue
// either by being marked or, for notes, by being deleted.
type SyncableRecord struct {
	// ID is the client-generated identifier (UUIDv7).
	ID string `json:"id"`

	// Kind selects the upload endpoint and the local queue.
	Kind RecordKind `json:"kind"`

	// Payload holds the kind-specific fields exactly as they are sent to the
	// remote service.
	Payload json.RawMessage `json:"payload"`

	// Synced is true once the remote service has accepted the record.
	Synced bool `json:"synced"`

	// CreatedAt is the local creation time; queues are drained in this order.
	CreatedAt time.Time `json:"created_at"`
}
