// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST surface of the reference server.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, response compression, bearer authentication and
// upload integrity checks are handled here before requests are delegated to
// the service layer.
package http
