// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's long-lived background workers.
package workers

import "context"

// Worker is a background task that runs until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context) error
}
