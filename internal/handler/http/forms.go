// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/utils"
	"github.com/MKhiriev/go-observer-sync/models"
)

func (h *Handler) getVersionSet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	set, err := h.services.ReferenceService.VersionSet(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getVersionSet").Msg("error loading version set")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if set == nil {
		set = models.VersionSet{}
	}

	if _, err = utils.WriteJSON(w, models.VersionResponse{Versions: set}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getVersionSet").Msg("error writing response")
	}
}

func (h *Handler) getForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	key := chi.URLParam(r, "key")

	item, err := h.services.ReferenceService.Item(r.Context(), key)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getForm").Str("key", key).Msg("error loading form")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, item, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getForm").Msg("error writing response")
	}
}
