package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when required registration or login
	// data is missing at the service boundary.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrTokenCreationFailed is returned when a session token cannot be
	// generated or signed.
	ErrTokenCreationFailed = errors.New("session token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned when a presented session token
	// fails signature, issuer, or expiration checks.
	ErrTokenIsExpiredOrInvalid = errors.New("session token is expired or invalid")
)
