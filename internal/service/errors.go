// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrReconciliationAbort is returned when the remote version set could not
	// be fetched or the cached answers could not be purged. Local state is
	// left as it was.
	ErrReconciliationAbort = errors.New("version reconciliation aborted")
	// ErrPartialUploadFailure is returned when at least one record failed to
	// push during a round.
	ErrPartialUploadFailure = errors.New("some records failed to upload")
	// ErrFetchSetFailure is returned when at least one reference fetch failed.
	// The version set is not committed in that case.
	ErrFetchSetFailure = errors.New("reference fetch set failed")
	// ErrReferenceVersionMismatch is returned when a fetched reference item
	// does not carry the version the remote set advertised for it.
	ErrReferenceVersionMismatch = errors.New("reference item version mismatch")
	// ErrSyncInProgress rejects a run call made while another round is active.
	ErrSyncInProgress = errors.New("sync already in progress")
	// ErrCommitVersionSet wraps a failed version-set commit.
	ErrCommitVersionSet = errors.New("commit version set failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrNoObserverID          = errors.New("no observer ID was given")
	ErrEmptyAnswerBatch      = errors.New("answer batch is empty")
	ErrTokenIsExpired        = errors.New("token is expired")
	ErrInvalidToken          = errors.New("invalid token")
)
