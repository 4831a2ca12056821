// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Ignatov

package validators

import (
	"context"
	"unicode"
	"unicode/utf8"

	"github.com/mignatov/authkeeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUsername targets the login name of a registration payload.
	FieldUsername = "username"

	// FieldPassword targets the password strength policy.
	FieldPassword = "password"

	// FieldConfirmation targets the password/confirmation equality check.
	FieldConfirmation = "confirmation"
)

// Registration policy limits. The password policy mirrors the browser form:
// at least 8 characters with one uppercase letter, one lowercase letter,
// and one digit.
const (
	minUsernameLength = 3
	minPasswordLength = 8
)

// RegistrationValidator validates [models.RegisterRequest] payloads before
// they reach the authentication core. The core itself re-checks only the
// presence of both credentials; length and strength policy live here, at
// the request layer.
type RegistrationValidator struct{}

// NewRegistrationValidator constructs a [RegistrationValidator] ready for use.
func NewRegistrationValidator() *RegistrationValidator {
	return &RegistrationValidator{}
}

// Validate implements [Validator] for [models.RegisterRequest].
//
// When no fields are given, all fields are validated in form order:
// username presence and length, password presence, confirmation match,
// password strength. The first violated rule is returned.
//
// Returns [ErrUnsupportedType] if input is not a [models.RegisterRequest]
// and [ErrUnknownField] for an unrecognised field name.
func (v *RegistrationValidator) Validate(_ context.Context, input any, fields ...string) error {
	request, ok := input.(models.RegisterRequest)
	if !ok {
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldConfirmation}
	}

	checkStrength := false
	for _, field := range fields {
		switch field {
		case FieldUsername:
			if err := validateUsername(request.Username); err != nil {
				return err
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrPasswordRequired
			}
			checkStrength = true
		case FieldConfirmation:
			if request.Password != request.ConfirmPassword {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	// The strength rule is reported last: a mismatched confirmation wins
	// over a weak password.
	if checkStrength {
		return validatePasswordStrength(request.Password)
	}

	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if utf8.RuneCountInString(username) < minUsernameLength {
		return ErrUsernameTooShort
	}

	return nil
}

func validatePasswordStrength(password string) error {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if utf8.RuneCountInString(password) < minPasswordLength || !hasUpper || !hasLower || !hasDigit {
		return ErrPasswordTooWeak
	}

	return nil
}
