// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RecordResult is the outcome of pushing a single record. A nil Err means
// the remote service accepted the record and the local store was updated.
type RecordResult struct {
	Kind RecordKind
	ID   string
	Err  error
}

// UploadReport aggregates the per-record results of one upload pass.
type UploadReport struct {
	Results []RecordResult
}

// Add appends a result to the report.
func (r *UploadReport) Add(kind RecordKind, id string, err error) {
	r.Results = append(r.Results, RecordResult{Kind: kind, ID: id, Err: err})
}

// Succeeded returns the number of records pushed successfully.
func (r UploadReport) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// Failures returns the failed results in the order they happened.
func (r UploadReport) Failures() []RecordResult {
	var out []RecordResult
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Failed returns the number of failed records.
func (r UploadReport) Failed() int {
	return len(r.Failures())
}

// FetchResult is the resolution of a single reference fetch.
type FetchResult struct {
	Key string
	Err error
}

// FetchReport aggregates the resolutions of one fan-out round.
//
// Issued is the number of fetches started; Resolved counts every completion,
// successful or not. A round is complete when Resolved == Issued.
type FetchReport struct {
	Issued   int
	Resolved int
	Results  []FetchResult
}

// Failures returns the failed fetches.
func (r FetchReport) Failures() []FetchResult {
	var out []FetchResult
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// AllSucceeded reports whether every issued fetch resolved successfully.
func (r FetchReport) AllSucceeded() bool {
	return r.Resolved == r.Issued && len(r.Failures()) == 0
}

// SyncMode selects which phases a round runs.
type SyncMode string

const (
	// SyncModeUpload runs only the upload phase.
	SyncModeUpload SyncMode = "upload"
	// SyncModeFull runs upload followed by reconciliation and download.
	SyncModeFull SyncMode = "full"
)

// SyncStatus is the terminal status of a round.
type SyncStatus string

const (
	// SyncStatusNoop means the round finished with nothing to download.
	SyncStatusNoop SyncStatus = "noop"
	// SyncStatusRefreshed means new reference data was downloaded and committed.
	SyncStatusRefreshed SyncStatus = "refreshed"
	// SyncStatusFailed means the round could not complete; Err holds the reason.
	SyncStatusFailed SyncStatus = "failed"
)

// SyncOutcome is delivered exactly once per round to the caller's completion
// handle and also returned from the run call.
type SyncOutcome struct {
	Mode   SyncMode
	Status SyncStatus
	Err    error

	// Upload carries per-record diagnostics. Upload failures never change
	// Status on their own.
	Upload UploadReport
	// Fetch is empty unless the round reached the download phase.
	Fetch FetchReport

	StartedAt  time.Time
	FinishedAt time.Time
}

// Failed reports whether the round terminated with a failure.
func (o SyncOutcome) Failed() bool {
	return o.Status == SyncStatusFailed
}
