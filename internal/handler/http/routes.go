// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-observer-sync/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Get("/api/version/", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(hashing(h, "recordHashing", recordSigned)).Post("/api/records/{kind}", h.pushRecord)
		r.With(hashing(h, "noteHashing", recordSigned)).Post("/api/notes", h.pushNote)
		r.With(hashing(h, "answersHashing", answersSigned)).Post("/api/answers", h.pushAnswers)

		r.Get("/api/forms/version", h.getVersionSet)
		r.Get("/api/forms/{key}", h.getForm)

		r.Get("/api/inbox", h.getInbox)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func recordSigned(req models.RecordPushRequest) (any, string) {
	return req.Payload, req.Hash
}

func answersSigned(req models.AnswerBatchRequest) (any, string) {
	return req.Answers, req.Hash
}
