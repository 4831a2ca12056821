// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Ignatov

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mignatov/authkeeper/internal/logger"
	"github.com/mignatov/authkeeper/internal/service"
	"github.com/mignatov/authkeeper/internal/utils"
	"github.com/mignatov/authkeeper/models"
)

// register creates a new user account.
//
// Responses mirror the browser form contract: 400 with the first violated
// validation rule, 409 when the username is taken, 200 on success. The
// duplicate-username answer is the same whether the collision was seen
// before or during the insert.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse("Invalid request"), http.StatusBadRequest)
		return
	}

	request.Username = strings.TrimSpace(request.Username)

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Debug().Str("reason", err.Error()).Msg("registration payload rejected")
		utils.WriteJSON(w, models.NewErrorResponse(err.Error()), http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Register(ctx, request.Username, request.Password)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user registration")
		utils.WriteJSON(w, models.NewErrorResponse("Server error"), http.StatusInternalServerError)
		return
	}

	if result.Status == service.RegisterUsernameTaken {
		utils.WriteJSON(w, models.NewErrorResponse("Username already exists."), http.StatusConflict)
		return
	}

	log.Info().Int64("user_id", result.User.UserID).Msg("user registered")
	utils.WriteJSON(w, models.NewSuccessResponse("Registration successful!"), http.StatusOK)
}

// login authenticates the caller and establishes a server-side session.
//
// On success the response carries the signed session JWT both as an
// HttpOnly cookie and in the Authorization header. Unknown username and
// wrong password produce the identical 401 answer.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse("Invalid request"), http.StatusBadRequest)
		return
	}

	request.Username = strings.TrimSpace(request.Username)
	if request.Username == "" || request.Password == "" {
		utils.WriteJSON(w, models.NewErrorResponse("Username and password required"), http.StatusBadRequest)
		return
	}

	// The session entry appears in the registry only if Login establishes
	// the identity; a rejected attempt leaves no trace.
	sessionToken, sink := h.registry.Open()

	result, err := h.services.AuthService.Login(ctx, request.Username, request.Password, sink)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user login")
		utils.WriteJSON(w, models.NewErrorResponse("Server error"), http.StatusInternalServerError)
		return
	}

	if result.Status == service.LoginRejected {
		utils.WriteJSON(w, models.NewErrorResponse("Invalid credentials"), http.StatusUnauthorized)
		return
	}

	token, err := h.services.AuthService.CreateSessionToken(ctx, result.Identity, sessionToken)
	if err != nil {
		log.Err(err).Msg("creation of session token failed")
		sink.Clear()
		utils.WriteJSON(w, models.NewErrorResponse("Server error"), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.sessionCookie(token.SignedString, h.sessionTTL))
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))

	log.Info().Int64("user_id", result.Identity.UserID).Msg("user logged in")
	utils.WriteJSON(w, models.NewSuccessResponse("Login successful"), http.StatusOK)
}

// logout destroys the caller's session. Idempotent: a missing or already
// cleared session still answers success, and the cookie is expired either way.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if sink, ok := utils.GetSessionSinkFromContext(ctx); ok {
		h.services.AuthService.Logout(ctx, sink)
	}

	http.SetCookie(w, h.sessionCookie("", -1))

	log.Debug().Msg("user logged out")
	utils.WriteJSON(w, models.NewSuccessResponse("Logged out"), http.StatusOK)
}

// session reports the identity bound to the caller's session. The auth
// middleware guarantees an active session is present in the context.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sink, ok := utils.GetSessionSinkFromContext(ctx)
	if !ok {
		log.Error().Msg("session sink missing from authenticated request context")
		utils.WriteJSON(w, models.NewErrorResponse("Not authenticated"), http.StatusUnauthorized)
		return
	}

	identity, active := sink.Current()
	if !active {
		utils.WriteJSON(w, models.NewErrorResponse("Not authenticated"), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.SessionResponse{
		Status:   models.StatusSuccess,
		UserID:   identity.UserID,
		Username: identity.Username,
	}, http.StatusOK)
}

// sessionCookie builds the session cookie. A negative maxAge expires it.
func (h *Handler) sessionCookie(value string, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge < 0 {
		cookie.MaxAge = -1
	} else {
		cookie.MaxAge = int(maxAge.Seconds())
	}
	return cookie
}
