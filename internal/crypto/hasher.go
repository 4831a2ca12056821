// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Ignatov

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements [PasswordHasher] using golang.org/x/crypto/bcrypt.
//
// The zero value is not usable; construct instances with [NewBcryptHasher].
type BcryptHasher struct {
	// cost is the bcrypt work factor used when hashing new passwords.
	// Verification reads the cost embedded in the hash, so raising the
	// cost later does not invalidate previously stored hashes.
	cost int
}

// NewBcryptHasher constructs a [BcryptHasher] with the given work factor.
// A cost outside the range supported by bcrypt falls back to
// [bcrypt.DefaultCost].
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &BcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher]. The salt is generated internally by
// bcrypt, so repeated calls with the same password produce distinct hashes.
//
// Returns a wrapped error if bcrypt rejects the input (e.g. the plaintext
// exceeds bcrypt's 72-byte limit).
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Verify implements [PasswordHasher]. bcrypt performs the comparison in
// constant time with respect to the derived key. Any error from the
// underlying comparison — mismatch, malformed hash, unsupported version —
// is reported uniformly as false.
func (h *BcryptHasher) Verify(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
