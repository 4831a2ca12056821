package http

import "errors"

// Sentinel errors used when extracting the session token from a request.
// Callers can match against them with [errors.Is].
var (
	// ErrNoSessionToken is returned when neither the session cookie nor the
	// "Authorization" header carries a token.
	ErrNoSessionToken = errors.New("no session token provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
