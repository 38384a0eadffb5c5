// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
)

// maxSignedBodyBytes caps the decoded body of a signed upload.
const maxSignedBodyBytes = 4 << 20

// hashing builds a middleware that decodes the body as T, recomputes the
// keyed digest of the part returned by signed and rejects the request with
// 400 when it differs from the hash the client sent. Bodies larger than
// maxSignedBodyBytes are rejected with 413. The body is restored for the
// next handler.
func hashing[T any](h *Handler, name string, signed func(T) (any, string)) func(http.Handler) http.Handler {
	fn := "*Handler." + name
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSignedBodyBytes))
			if maxErr := (*http.MaxBytesError)(nil); errors.As(err, &maxErr) {
				log.Warn().Str("func", fn).Int64("limit", maxErr.Limit).Msg("request body too large")
				http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			if err != nil {
				log.Err(err).Str("func", fn).Msg("failed to read request body")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			var req T
			if err = json.Unmarshal(body, &req); err != nil {
				log.Err(err).Str("func", fn).Msg("failed to decode JSON")
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}

			value, hash := signed(req)
			if !h.hasher.VerifyJSON(value, hash) {
				log.Error().Str("func", fn).Str("hash from request", hash).Msg("hashes are not equal")
				http.Error(w, "Integrity check failed", http.StatusBadRequest)
				return
			}

			log.Debug().Str("func", fn).Msg("hashes are equal")
			next.ServeHTTP(w, r)
		})
	}
}
