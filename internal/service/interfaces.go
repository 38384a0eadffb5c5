// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-observer-sync/models"
)

// ReferenceService serves the published form definitions.
type ReferenceService interface {
	VersionSet(ctx context.Context) (models.VersionSet, error)
	Item(ctx context.Context, key string) (models.ReferenceItem, error)
}

// InboxService accepts records uploaded by observers.
type InboxService interface {
	AcceptRecord(ctx context.Context, observerID string, kind models.RecordKind, payload json.RawMessage) error
	AcceptAnswers(ctx context.Context, observerID string, batch models.AnswerBatchRequest) error
	Entries(ctx context.Context, observerID string) ([]models.InboxEntry, error)
}

// AuthService issues and verifies observer tokens.
type AuthService interface {
	CreateToken(ctx context.Context, observerID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
