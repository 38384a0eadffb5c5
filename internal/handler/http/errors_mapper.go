// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-observer-sync/internal/service"
	"github.com/MKhiriev/go-observer-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrEmptyAnswerBatch:      http.StatusBadRequest,
	service.ErrNoObserverID:          http.StatusUnauthorized,
	service.ErrInvalidToken:          http.StatusUnauthorized,
	service.ErrTokenIsExpired:        http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrReferenceItemNotFound: http.StatusNotFound,
	store.ErrRecordNotFound:        http.StatusNotFound,
	store.ErrInvalidRecord:         http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
