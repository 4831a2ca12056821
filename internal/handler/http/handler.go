// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Ignatov

package http

import (
	"time"

	"github.com/mignatov/authkeeper/internal/logger"
	"github.com/mignatov/authkeeper/internal/service"
	"github.com/mignatov/authkeeper/internal/session"
	"github.com/mignatov/authkeeper/internal/validators"
)

// sessionCookieName is the cookie carrying the signed session JWT.
const sessionCookieName = "authkeeper_session"

// Handler serves the authentication REST API. It owns the request-layer
// validator and resolves per-request session sinks from the shared registry.
type Handler struct {
	services   *service.Services
	registry   *session.Registry
	validator  validators.Validator
	sessionTTL time.Duration

	logger *logger.Logger
}

// NewHandler wires the HTTP transport to the service layer and the
// server-side session registry. sessionTTL bounds the lifetime of the
// session cookie issued at login.
func NewHandler(services *service.Services, registry *session.Registry, sessionTTL time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		registry:   registry,
		validator:  validators.NewRegistrationValidator(),
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}
