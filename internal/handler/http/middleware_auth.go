// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Ignatov

package http

import (
	"net/http"
	"strings"

	"github.com/mignatov/authkeeper/internal/logger"
	"github.com/mignatov/authkeeper/internal/utils"
	"github.com/mignatov/authkeeper/models"
)

// auth is the strict session middleware. It extracts the session JWT from
// the request, validates it, resolves the registry-backed sink for the
// token's session key, and requires that an identity is actually bound to
// it. Requests without a live session are rejected with 401.
//
// The sink is stored in the request context under [utils.SessionSinkCtxKey]
// so downstream handlers can read the identity without re-parsing the token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		tokenString, err := getSessionTokenFromRequest(r)
		if err != nil {
			log.Debug().Str("reason", err.Error()).Msg("request rejected: no session token")
			utils.WriteJSON(w, models.NewErrorResponse("Not authenticated"), http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseSessionToken(ctx, tokenString)
		if err != nil {
			log.Debug().Str("reason", err.Error()).Msg("request rejected: bad session token")
			utils.WriteJSON(w, models.NewErrorResponse("Not authenticated"), http.StatusUnauthorized)
			return
		}

		sink := h.registry.Handle(token.SessionID)
		if _, active := sink.Current(); !active {
			// valid JWT, but the server-side session is gone (logout or restart)
			log.Debug().Msg("request rejected: session no longer active")
			utils.WriteJSON(w, models.NewErrorResponse("Not authenticated"), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSessionSink(ctx, sink)))
	})
}

// withSessionSink is the lenient variant of [Handler.auth]: it attaches the
// registry-backed sink when the request carries a valid session token and
// passes the request through untouched otherwise. Used by logout, which
// must succeed even for callers with no session at all.
func (h *Handler) withSessionSink(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenString, err := getSessionTokenFromRequest(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		token, err := h.services.AuthService.ParseSessionToken(ctx, tokenString)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		sink := h.registry.Handle(token.SessionID)
		next.ServeHTTP(w, r.WithContext(utils.WithSessionSink(ctx, sink)))
	})
}

// getSessionTokenFromRequest extracts the raw session JWT string, looking at
// the session cookie first and falling back to a bearer "Authorization"
// header.
func getSessionTokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSessionToken
	}

	return getTokenFromAuthHeader(authHeader)
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the standard form:
//
//	Authorization: <scheme> <token>
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
