// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// ErrTransport is matched by every error a [RemoteService] returns: network
// failures, non-2xx responses and undecodable bodies alike.
var ErrTransport = errors.New("transport error")

// HTTP status sentinels. Each is wrapped together with [ErrTransport].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// ErrInvalidResponse is returned when a 2xx response body cannot be decoded
// or does not match the request.
var ErrInvalidResponse = errors.New("invalid response")
