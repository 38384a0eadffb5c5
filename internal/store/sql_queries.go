// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-observer-sync/models"
)

const (
	tableRecords       = "records"
	tableFormVersions  = "form_versions"
	tableVersionCommit = "version_set_commits"
	tableReference     = "reference_items"

	versionCommitRowID = 1
)

// psql builds queries with SQLite "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var recordColumns = []string{"id", "kind", "payload", "synced", "created_at"}

func buildUnsyncedRecordsQuery(kind models.RecordKind) (string, []any, error) {
	return psql.
		Select(recordColumns...).
		From(tableRecords).
		Where(sq.Eq{"kind": kind.String(), "synced": false}).
		OrderBy("created_at", "id").
		ToSql()
}

// buildAllOfKindQuery selects every record of kind, synced or not.
func buildAllOfKindQuery(kind models.RecordKind) (string, []any, error) {
	return psql.
		Select(recordColumns...).
		From(tableRecords).
		Where(sq.Eq{"kind": kind.String()}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildMarkSyncedQuery(ids []string) (string, []any, error) {
	return psql.
		Update(tableRecords).
		Set("synced", true).
		Where(sq.Eq{"id": ids, "synced": false}).
		ToSql()
}

func buildDeleteRecordQuery(id string, kind models.RecordKind) (string, []any, error) {
	return psql.
		Delete(tableRecords).
		Where(sq.Eq{"id": id, "kind": kind.String()}).
		ToSql()
}

func buildPurgeKindsQuery(kinds ...models.RecordKind) (string, []any, error) {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}

	return psql.
		Delete(tableRecords).
		Where(sq.Eq{"kind": names}).
		ToSql()
}

func buildInsertRecordQuery(r models.SyncableRecord) (string, []any, error) {
	return psql.
		Insert(tableRecords).
		Columns(recordColumns...).
		Values(r.ID, r.Kind.String(), []byte(r.Payload), r.Synced, r.CreatedAt).
		ToSql()
}

func buildSelectVersionsQuery() (string, []any, error) {
	return psql.
		Select("form_key", "version").
		From(tableFormVersions).
		OrderBy("form_key").
		ToSql()
}

func buildVersionCommitExistsQuery() (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From(tableVersionCommit).
		Where(sq.Eq{"id": versionCommitRowID}).
		ToSql()
}

func buildClearVersionsQuery() (string, []any, error) {
	return psql.Delete(tableFormVersions).ToSql()
}

// buildInsertVersionsQuery inserts the whole set in one statement. set must
// not be empty.
func buildInsertVersionsQuery(set models.VersionSet) (string, []any, error) {
	q := psql.Insert(tableFormVersions).Columns("form_key", "version")
	for _, e := range set {
		q = q.Values(e.Key, e.Version)
	}
	return q.ToSql()
}

func buildMarkVersionCommitQuery(at time.Time) (string, []any, error) {
	return psql.
		Insert(tableVersionCommit).
		Columns("id", "committed_at").
		Values(versionCommitRowID, at).
		Suffix("ON CONFLICT(id) DO UPDATE SET committed_at = excluded.committed_at").
		ToSql()
}

// buildPruneReferenceQuery deletes reference items whose keys are not in
// keep. An empty keep deletes all items.
func buildPruneReferenceQuery(keep []string) (string, []any, error) {
	return psql.
		Delete(tableReference).
		Where(sq.NotEq{"form_key": keep}).
		ToSql()
}

func buildUpsertReferenceQuery(item models.ReferenceItem, at time.Time) (string, []any, error) {
	return psql.
		Insert(tableReference).
		Columns("form_key", "version", "payload", "fetched_at").
		Values(item.Key, item.Version, []byte(item.Payload), at).
		Suffix("ON CONFLICT(form_key) DO UPDATE SET version = excluded.version, payload = excluded.payload, fetched_at = excluded.fetched_at").
		ToSql()
}

func buildSelectReferenceQuery(key string) (string, []any, error) {
	return psql.
		Select("form_key", "version", "payload").
		From(tableReference).
		Where(sq.Eq{"form_key": key}).
		ToSql()
}
