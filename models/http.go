// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Ignatov

package models

// RegisterRequest is the JSON payload of a registration call.
// Field names mirror the browser form: username, password, and the
// confirmation the user retyped. The confirmation is compared at the
// request-validation layer and never reaches the core.
type RegisterRequest struct {
	// Username is the desired login name. Leading and trailing
	// whitespace is trimmed by the handler before validation.
	Username string `json:"username"`

	// Password is the plaintext password. It exists only for the
	// lifetime of the request and is hashed before persistence.
	Password string `json:"password"`

	// ConfirmPassword must match Password exactly.
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the JSON payload of a login call.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// StatusResponse is the uniform JSON envelope returned by every
// authentication endpoint: {"status": "success"|"error", "message": ...}.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SessionResponse describes the identity bound to the caller's session.
// Returned by the session inspection endpoint for authenticated callers.
type SessionResponse struct {
	Status   string `json:"status"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// Response status values used by StatusResponse.Status.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// NewSuccessResponse builds a StatusResponse reporting success.
func NewSuccessResponse(message string) StatusResponse {
	return StatusResponse{Status: StatusSuccess, Message: message}
}

// NewErrorResponse builds a StatusResponse reporting an error.
func NewErrorResponse(message string) StatusResponse {
	return StatusResponse{Status: StatusError, Message: message}
}
