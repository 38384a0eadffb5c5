// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/service"
	"github.com/MKhiriev/go-observer-sync/internal/store"
	"github.com/MKhiriev/go-observer-sync/internal/utils"
	"github.com/MKhiriev/go-observer-sync/models"
)

const testHashKey = "test-hash-key"

// ---- Mock: AuthService ----

type mockAuthSvc struct{}

func (m *mockAuthSvc) CreateToken(_ context.Context, observerID string) (models.Token, error) {
	return models.Token{ObserverID: observerID}, nil
}

func (m *mockAuthSvc) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	if tokenString != "stub-token" {
		return models.Token{}, service.ErrInvalidToken
	}
	return models.Token{ObserverID: "observer-1"}, nil
}

// ---- Mock: AppInfoService ----

type mockAppInfoSvc struct{}

func (m *mockAppInfoSvc) GetAppVersion(_ context.Context) string {
	return "test-version"
}

// ---- Mock: ReferenceService ----

type mockReferenceSvc struct {
	set   models.VersionSet
	items map[string]models.ReferenceItem
}

func (m *mockReferenceSvc) VersionSet(_ context.Context) (models.VersionSet, error) {
	return m.set, nil
}

func (m *mockReferenceSvc) Item(_ context.Context, key string) (models.ReferenceItem, error) {
	item, ok := m.items[key]
	if !ok {
		return models.ReferenceItem{}, store.ErrReferenceItemNotFound
	}
	return item, nil
}

// ---- Mock: InboxService ----

type mockInboxSvc struct {
	records []models.InboxEntry
	answers []models.AnswerBatchRequest
	err     error
}

func (m *mockInboxSvc) AcceptRecord(_ context.Context, observerID string, kind models.RecordKind, payload json.RawMessage) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, models.InboxEntry{ObserverID: observerID, Kind: kind, Payload: payload})
	return nil
}

func (m *mockInboxSvc) AcceptAnswers(_ context.Context, _ string, batch models.AnswerBatchRequest) error {
	if m.err != nil {
		return m.err
	}
	m.answers = append(m.answers, batch)
	return nil
}

func (m *mockInboxSvc) Entries(_ context.Context, _ string) ([]models.InboxEntry, error) {
	return m.records, m.err
}

// ---- Helper ----

func newTestHandler(t *testing.T, inbox *mockInboxSvc) *Handler {
	t.Helper()
	return &Handler{
		logger: logger.Nop(),
		hasher: utils.NewHasher(testHashKey),
		services: &service.Services{
			AuthService:    &mockAuthSvc{},
			AppInfoService: &mockAppInfoSvc{},
			ReferenceService: &mockReferenceSvc{
				set: models.VersionSet{{Key: "f1", Version: "3"}},
				items: map[string]models.ReferenceItem{
					"f1": {Key: "f1", Version: "3", Payload: json.RawMessage(`{"q":1}`)},
				},
			},
			InboxService: inbox,
		},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestHandler(t, &mockInboxSvc{}).Init()
}

func validAuthHeader() string { return "Bearer stub-token" }

func signedBody(t *testing.T, signed any, build func(hash string) any) *bytes.Reader {
	t.Helper()
	hash, err := utils.NewHasher(testHashKey).HexJSON(signed)
	require.NoError(t, err)
	body, err := json.Marshal(build(hash))
	require.NoError(t, err)
	return bytes.NewReader(body)
}

// ---- Public routes ----

func TestInit_VersionIsPublic(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "test-version", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/records/branch_details"},
		{http.MethodPost, "/api/notes"},
		{http.MethodPost, "/api/answers"},
		{http.MethodGet, "/api/forms/version"},
		{http.MethodGet, "/api/forms/f1"},
		{http.MethodGet, "/api/inbox"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestInit_UnknownMethodIsNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/version/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ---- Records ----

func TestPushRecord(t *testing.T) {
	payload := json.RawMessage(`{"station":"12","opened":true}`)

	tests := []struct {
		name       string
		path       string
		hash       string
		inboxErr   error
		wantStatus int
		wantKind   models.RecordKind
	}{
		{name: "branch details accepted", path: "/api/records/branch_details", wantStatus: http.StatusCreated, wantKind: models.KindBranchDetails},
		{name: "note accepted", path: "/api/notes", wantStatus: http.StatusCreated, wantKind: models.KindNote},
		{name: "tampered hash", path: "/api/records/branch_details", hash: "deadbeef", wantStatus: http.StatusBadRequest},
		{name: "service rejects", path: "/api/records/unknown", inboxErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inbox := &mockInboxSvc{err: tt.inboxErr}
			router := newTestHandler(t, inbox).Init()

			body := signedBody(t, payload, func(hash string) any {
				if tt.hash != "" {
					hash = tt.hash
				}
				return models.RecordPushRequest{Payload: payload, Hash: hash}
			})
			req := httptest.NewRequest(http.MethodPost, tt.path, body)
			req.Header.Set("Authorization", validAuthHeader())
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantKind != "" {
				require.Len(t, inbox.records, 1)
				assert.Equal(t, tt.wantKind, inbox.records[0].Kind)
				assert.Equal(t, "observer-1", inbox.records[0].ObserverID)
				assert.JSONEq(t, string(payload), string(inbox.records[0].Payload))
			}
		})
	}
}

func TestPushAnswers(t *testing.T) {
	answers := []json.RawMessage{json.RawMessage(`{"q":"1","a":"yes"}`), json.RawMessage(`{"q":"2","a":"no"}`)}
	inbox := &mockInboxSvc{}
	router := newTestHandler(t, inbox).Init()

	body := signedBody(t, answers, func(hash string) any {
		return models.AnswerBatchRequest{Answers: answers, Length: len(answers), Hash: hash}
	})
	req := httptest.NewRequest(http.MethodPost, "/api/answers", body)
	req.Header.Set("Authorization", validAuthHeader())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, inbox.answers, 1)
	assert.Equal(t, 2, inbox.answers[0].Length)
}

func TestGetInbox_EmptyListIsArray(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/inbox", nil)
	req.Header.Set("Authorization", validAuthHeader())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

// ---- Forms ----

func TestForms(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "version set", path: "/api/forms/version", wantStatus: http.StatusOK, wantBody: `{"versions":[{"key":"f1","version":"3"}]}`},
		{name: "known form", path: "/api/forms/f1", wantStatus: http.StatusOK, wantBody: `{"key":"f1","version":"3","payload":{"q":1}}`},
		{name: "unknown form", path: "/api/forms/f9", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Authorization", validAuthHeader())
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}
