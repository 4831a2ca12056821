// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Ignatov

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the API router. Register and login are open; logout and
// session inspection run behind the session-resolving middleware. Logout is
// lenient (an absent session is still a successful logout), session
// inspection requires an authenticated caller.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.withSessionSink)
		r.Post("/api/auth/logout", h.logout)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/auth/session", h.session)
	})

	return router
}
