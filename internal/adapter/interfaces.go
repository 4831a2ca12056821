// Package adapter provides the client-side view of the authkeeper server.
//
// The primary abstraction is [Client], which decouples callers from the REST
// transport. The package ships an HTTP implementation ([NewHTTPClient]) built
// on resty; it manages the bearer token issued at login and maps HTTP status
// codes to the sentinel errors defined in errors.go so callers can use
// [errors.Is] for transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/mignatov/authkeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines transport-agnostic communication with the authkeeper
// server. Implementations are responsible for serialisation, session token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type Client interface {
	// SetToken stores the session token attached to all subsequent
	// authenticated requests. Called automatically after a successful Login.
	SetToken(token string)

	// Token returns the session token currently stored in the adapter, or
	// an empty string if the caller has not logged in yet.
	Token() string

	// Register creates a new account. Returns ErrConflict (wrapped) when the
	// username is taken and ErrBadRequest (wrapped) on a validation failure.
	Register(ctx context.Context, request models.RegisterRequest) (models.StatusResponse, error)

	// Login authenticates the caller. On success it stores the session token
	// via SetToken. Returns ErrUnauthorized (wrapped) on rejected credentials.
	Login(ctx context.Context, request models.LoginRequest) (models.StatusResponse, error)

	// Logout destroys the caller's server-side session and discards the
	// stored token. Succeeds even when no session is active.
	Logout(ctx context.Context) (models.StatusResponse, error)

	// Session reports the identity bound to the caller's session. Returns
	// ErrUnauthorized (wrapped) when no live session exists.
	Session(ctx context.Context) (models.SessionResponse, error)
}
