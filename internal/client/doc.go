// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the observer sync command-line client.
//
// It runs a single upload or full round, keeps rounds ticking in watch mode,
// or enqueues a local record with the add sub-command.
package client
