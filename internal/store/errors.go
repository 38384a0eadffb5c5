// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a record addressed by ID does not
	// exist in the local database.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrReferenceItemNotFound is returned when no reference item is stored
	// under the requested key.
	ErrReferenceItemNotFound = errors.New("reference item was not found")

	// ErrInvalidRecord is returned by AddRecord for records without an ID,
	// with an unknown kind or with an invalid JSON payload.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrRecordAlreadyExists is returned by AddRecord when a record with the
	// same ID is already queued.
	ErrRecordAlreadyExists = errors.New("record already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
