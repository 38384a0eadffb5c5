// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-observer-sync/internal/config"
	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/utils"
	"github.com/MKhiriev/go-observer-sync/models"
)

// TraceIDHeader carries the per-request trace ID.
const TraceIDHeader = "X-Trace-ID"

type httpRemoteService struct {
	client *utils.HTTPClient
	hasher *utils.Hasher
	ids    *utils.UUIDGenerator

	token string

	logger *logger.Logger
}

// NewHTTPRemoteService constructs an HTTP/REST implementation of
// [RemoteService]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress, configures the underlying HTTP client with the
// resolved base URL, request timeout and retry count, and keys the upload
// integrity hasher with appCfg.HashKey.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteService(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RemoteService, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout, adapterCfg.RetryCount)
	client.SetBaseURL(baseURL)

	return &httpRemoteService{
		client: client,
		hasher: utils.NewHasher(appCfg.HashKey),
		ids:    utils.NewUUIDGenerator(),
		token:  strings.TrimSpace(appCfg.Token),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// PushRecord implements [RemoteService]. It POSTs the payload with its
// integrity hash to POST /api/records/{kind}. The hash covers the compact
// JSON encoding of the payload.
func (h *httpRemoteService) PushRecord(ctx context.Context, kind models.RecordKind, payload json.RawMessage) error {
	sum, err := h.hasher.HexJSON(payload)
	if err != nil {
		return fmt.Errorf("%w: encode record: %w", ErrTransport, err)
	}
	body := models.RecordPushRequest{Payload: payload, Hash: sum}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("kind", kind.String()).
		SetBody(body).
		Post("/api/records/{kind}")
	if err != nil {
		return fmt.Errorf("%w: push record request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// PushAnswerBatch implements [RemoteService]. The hash covers the JSON
// encoding of the answers array.
func (h *httpRemoteService) PushAnswerBatch(ctx context.Context, payloads []json.RawMessage) error {
	sum, err := h.hasher.HexJSON(payloads)
	if err != nil {
		return fmt.Errorf("%w: encode answers: %w", ErrTransport, err)
	}

	body := models.AnswerBatchRequest{
		Answers: payloads,
		Length:  len(payloads),
		Hash:    sum,
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/answers")
	if err != nil {
		return fmt.Errorf("%w: push answers request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// PushNote implements [RemoteService] via POST /api/notes.
func (h *httpRemoteService) PushNote(ctx context.Context, payload json.RawMessage) error {
	sum, err := h.hasher.HexJSON(payload)
	if err != nil {
		return fmt.Errorf("%w: encode note: %w", ErrTransport, err)
	}
	body := models.RecordPushRequest{Payload: payload, Hash: sum}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/notes")
	if err != nil {
		return fmt.Errorf("%w: push note request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// FetchVersionSet implements [RemoteService] via GET /api/forms/version.
func (h *httpRemoteService) FetchVersionSet(ctx context.Context) (models.VersionSet, error) {
	resp, err := h.authedRequest(ctx).Get("/api/forms/version")
	if err != nil {
		return nil, fmt.Errorf("%w: fetch version set request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var vr models.VersionResponse
	if err = json.Unmarshal(resp.Body(), &vr); err != nil {
		return nil, fmt.Errorf("%w: %w: decode version set: %w", ErrTransport, ErrInvalidResponse, err)
	}

	return vr.Versions.Normalize(), nil
}

// FetchReferenceItem implements [RemoteService] via GET /api/forms/{key}.
func (h *httpRemoteService) FetchReferenceItem(ctx context.Context, key string) (models.ReferenceItem, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("key", key).
		Get("/api/forms/{key}")
	if err != nil {
		return models.ReferenceItem{}, fmt.Errorf("%w: fetch reference item request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReferenceItem{}, err
	}

	var item models.ReferenceItem
	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return models.ReferenceItem{}, fmt.Errorf("%w: %w: decode reference item: %w", ErrTransport, ErrInvalidResponse, err)
	}
	if item.Key != key {
		return models.ReferenceItem{}, fmt.Errorf("%w: %w: requested key %q, got %q", ErrTransport, ErrInvalidResponse, key, item.Key)
	}

	return item, nil
}

// ServerVersion implements [RemoteService] via GET /api/version/.
func (h *httpRemoteService) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.authedRequest(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("%w: server version request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpRemoteService) authedRequest(ctx context.Context) *resty.Request {
	traceID := h.ids.Generate()
	logger.FromContext(ctx).Debug().
		Str("func", "httpRemoteService.authedRequest").
		Str("trace_id", traceID).
		Msg("outbound request")

	req := h.client.R().
		SetContext(ctx).
		SetHeader(TraceIDHeader, traceID)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}
