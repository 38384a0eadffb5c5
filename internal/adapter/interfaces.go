// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the remote service.
//
// The primary abstraction is [RemoteService], which decouples the sync core
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteService]) built on resty.
//
// Every failure returned by an implementation matches [ErrTransport] with
// [errors.Is]. HTTP statuses are additionally mapped by mapHTTPError to
// sentinels such as [ErrNotFound] or [ErrUnauthorized].
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-observer-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_service_mock.go -package=mock

// RemoteService is the remote end of a sync round: it accepts pushed
// records and serves the authoritative reference data.
type RemoteService interface {
	// PushRecord sends a single record of kind. A nil error means the
	// remote service accepted it.
	PushRecord(ctx context.Context, kind models.RecordKind, payload json.RawMessage) error

	// PushAnswerBatch sends all answers of a round as one aggregate
	// request. It either accepts the whole batch or none of it.
	PushAnswerBatch(ctx context.Context, payloads []json.RawMessage) error

	// PushNote sends a single note.
	PushNote(ctx context.Context, payload json.RawMessage) error

	// FetchVersionSet returns the version set currently advertised by the
	// remote service.
	FetchVersionSet(ctx context.Context) (models.VersionSet, error)

	// FetchReferenceItem downloads the reference item stored under key.
	FetchReferenceItem(ctx context.Context, key string) (models.ReferenceItem, error)

	// ServerVersion returns the build version reported by the remote
	// service.
	ServerVersion(ctx context.Context) (string, error)
}
