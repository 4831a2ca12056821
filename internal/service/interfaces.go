// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Ignatov

// Package service contains the business rules of the application. The
// authentication service orchestrates registration (duplicate check → build
// → persist), login (lookup → verify → establish session), and logout.
//
// Expected business results — a taken username, rejected credentials — are
// modeled as outcome values, never as errors. Errors are reserved for
// infrastructure failures: an unreachable store, a failing hasher.
package service

import (
	"context"

	"github.com/mignatov/authkeeper/internal/session"
	"github.com/mignatov/authkeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_service_mock.go -package=mock

// AuthService holds the authentication business rules: registration,
// credential verification, and session lifecycle.
type AuthService interface {
	// Register creates a new user account. A username collision — detected
	// either by the pre-insert check or by the store's unique constraint —
	// yields the UsernameTaken outcome, not an error.
	Register(ctx context.Context, username, password string) (RegisterResult, error)

	// Login authenticates the supplied credentials. On success it binds the
	// authenticated identity to sink; on rejection sink is left untouched.
	// Unknown username and wrong password yield the same Rejected outcome.
	Login(ctx context.Context, username, password string, sink session.Sink) (LoginResult, error)

	// Logout destroys the session bound to sink. Idempotent: logging out
	// with no active session is a no-op.
	Logout(ctx context.Context, sink session.Sink)

	// CreateSessionToken issues a signed JWT referencing the given identity
	// and the opaque session registry key.
	CreateSessionToken(ctx context.Context, identity session.Identity, sessionID string) (models.Token, error)

	// ParseSessionToken validates and parses a raw session JWT string.
	ParseSessionToken(ctx context.Context, tokenString string) (models.Token, error)
}
