package service

import (
	"fmt"

	"github.com/mignatov/authkeeper/internal/crypto"
	"github.com/mignatov/authkeeper/models"
)

// NewUser assembles an unpersisted user record from raw credentials: it
// checks that both fields are present and derives the password hash. The
// plaintext password never leaves this function.
func NewUser(username, password string, hasher crypto.PasswordHasher) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("error occurred during hashing password: %w", err)
	}

	return models.User{Username: username, PasswordHash: passwordHash}, nil
}
