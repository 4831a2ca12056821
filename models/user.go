// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Ignatov

package models

import "time"

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user, assigned by the
	// store on insert. It is zero for a user that has not been persisted yet.
	UserID int64 `json:"-"`

	// Username is the unique login identifier chosen at registration.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	// Assigned by the store on insert; used for auditing.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Persisted reports whether the user has been stored and assigned an ID.
func (u User) Persisted() bool {
	return u.UserID != 0
}
