// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Ignatov

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username already exists in the
	// database. It surfaces both from the pre-insert duplicate check and from
	// a unique-constraint violation raised by a concurrent registration.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrUnsupportedDriver is returned by NewStorages when the configured
	// database driver is neither "pgx" nor "sqlite3".
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
