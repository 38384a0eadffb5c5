// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-observer-sync/models"
)

// UploadError folds the failures of report into one error matching
// ErrPartialUploadFailure. It returns nil when every record was pushed.
func UploadError(report models.UploadReport) error {
	failures := report.Failures()
	if len(failures) == 0 {
		return nil
	}

	errs := make([]error, 0, len(failures))
	for _, f := range failures {
		if f.ID == "" {
			errs = append(errs, fmt.Errorf("%s: %w", f.Kind, f.Err))
			continue
		}
		errs = append(errs, fmt.Errorf("%s %s: %w", f.Kind, f.ID, f.Err))
	}

	return fmt.Errorf("%w: %d of %d records: %w",
		ErrPartialUploadFailure, len(failures), len(report.Results), errors.Join(errs...))
}

// FetchError folds the failures of report into one error matching
// ErrFetchSetFailure. It returns nil when every issued fetch succeeded.
func FetchError(report models.FetchReport) error {
	if report.AllSucceeded() {
		return nil
	}

	failures := report.Failures()
	errs := make([]error, 0, len(failures))
	for _, f := range failures {
		errs = append(errs, fmt.Errorf("%s: %w", f.Key, f.Err))
	}
	if report.Resolved != report.Issued {
		errs = append(errs, fmt.Errorf("%d of %d fetches unresolved", report.Issued-report.Resolved, report.Issued))
	}

	return fmt.Errorf("%w: %d of %d fetches failed: %w",
		ErrFetchSetFailure, len(failures), report.Issued, errors.Join(errs...))
}
