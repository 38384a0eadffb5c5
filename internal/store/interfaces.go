// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-observer-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalStore is the client's persistent state: the unsynced upload queues,
// the cached version set and the downloaded reference items.
//
// Implementations must be safe for concurrent use; SaveReferenceItem is
// called from several fetch goroutines at once.
type LocalStore interface {
	// UnsyncedRecords returns the records of kind not yet accepted by the
	// remote service, oldest first.
	UnsyncedRecords(ctx context.Context, kind models.RecordKind) ([]models.SyncableRecord, error)
	// MarkSynced flips Synced to true for the given records. Records that
	// are already synced are left untouched.
	MarkSynced(ctx context.Context, records ...models.SyncableRecord) error
	// UnsyncedAnswers returns every unsynced question answer.
	UnsyncedAnswers(ctx context.Context) ([]models.SyncableRecord, error)
	// Notes returns every locally stored note.
	Notes(ctx context.Context) ([]models.SyncableRecord, error)
	// DeleteNote removes a note after it was pushed.
	DeleteNote(ctx context.Context, note models.SyncableRecord) error

	// CachedVersionSet returns the last committed version set. ok is false
	// when no set was ever committed.
	CachedVersionSet(ctx context.Context) (set models.VersionSet, ok bool, err error)
	// PurgeAnswersAndNotes drops all cached answers and notes.
	PurgeAnswersAndNotes(ctx context.Context) error
	// CommitVersionSet atomically replaces the cached version set and drops
	// reference items whose keys are no longer part of it.
	CommitVersionSet(ctx context.Context, set models.VersionSet) error
	// SaveReferenceItem stores (or replaces) a downloaded reference item.
	SaveReferenceItem(ctx context.Context, item models.ReferenceItem) error

	// AddRecord enqueues a new unsynced record.
	AddRecord(ctx context.Context, record models.SyncableRecord) error
	// ReferenceItem returns a stored reference item by key.
	ReferenceItem(ctx context.Context, key string) (models.ReferenceItem, error)
}

// Inbox keeps the records accepted by the reference server.
type Inbox interface {
	Append(ctx context.Context, observerID string, kind models.RecordKind, payloads ...json.RawMessage) error
	Entries(ctx context.Context, observerID string) ([]models.InboxEntry, error)
}

// ReferenceCatalog serves the reference data published by the server.
type ReferenceCatalog interface {
	VersionSet(ctx context.Context) (models.VersionSet, error)
	Item(ctx context.Context, key string) (models.ReferenceItem, error)
}
