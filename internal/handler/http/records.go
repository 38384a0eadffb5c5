// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/utils"
	"github.com/MKhiriev/go-observer-sync/models"
)

func (h *Handler) pushRecord(w http.ResponseWriter, r *http.Request) {
	h.acceptRecord(w, r, models.RecordKind(chi.URLParam(r, "kind")))
}

func (h *Handler) pushNote(w http.ResponseWriter, r *http.Request) {
	h.acceptRecord(w, r, models.KindNote)
}

func (h *Handler) acceptRecord(w http.ResponseWriter, r *http.Request, kind models.RecordKind) {
	log := logger.FromRequest(r)
	observerID, _ := utils.GetObserverIDFromContext(r.Context())

	var req models.RecordPushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.acceptRecord").Msg("invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.InboxService.AcceptRecord(r.Context(), observerID, kind, req.Payload); err != nil {
		log.Err(err).Str("func", "*Handler.acceptRecord").Str("kind", kind.String()).Msg("error accepting record")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) pushAnswers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	observerID, _ := utils.GetObserverIDFromContext(r.Context())

	var req models.AnswerBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.pushAnswers").Msg("invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.InboxService.AcceptAnswers(r.Context(), observerID, req); err != nil {
		log.Err(err).Str("func", "*Handler.pushAnswers").Int("answers", len(req.Answers)).Msg("error accepting answers")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getInbox(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	observerID, _ := utils.GetObserverIDFromContext(r.Context())

	entries, err := h.services.InboxService.Entries(r.Context(), observerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getInbox").Msg("error listing inbox")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if entries == nil {
		entries = []models.InboxEntry{}
	}

	if _, err = utils.WriteJSON(w, entries, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getInbox").Msg("error writing response")
	}
}
