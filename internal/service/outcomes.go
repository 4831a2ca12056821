// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Ignatov

package service

import (
	"github.com/mignatov/authkeeper/internal/session"
	"github.com/mignatov/authkeeper/models"
)

// RegisterStatus is the tagged outcome of a registration attempt.
type RegisterStatus int

const (
	// RegisterCreated means the account was persisted.
	RegisterCreated RegisterStatus = iota + 1

	// RegisterUsernameTaken means a record with this username already
	// exists. This is an expected business outcome, not an error.
	RegisterUsernameTaken
)

// RegisterResult is the outcome of [AuthService.Register].
// User is populated only when Status is RegisterCreated.
type RegisterResult struct {
	Status RegisterStatus
	User   models.User
}

// LoginStatus is the tagged outcome of a login attempt.
type LoginStatus int

const (
	// LoginAuthenticated means the credentials matched and a session was
	// established.
	LoginAuthenticated LoginStatus = iota + 1

	// LoginRejected means the credentials did not match. The caller cannot
	// distinguish an unknown username from a wrong password.
	LoginRejected
)

// LoginResult is the outcome of [AuthService.Login].
// Identity is populated only when Status is LoginAuthenticated.
type LoginResult struct {
	Status   LoginStatus
	Identity session.Identity
}
