// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Ignatov

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mignatov/authkeeper/internal/config"
	"github.com/mignatov/authkeeper/internal/crypto"
	"github.com/mignatov/authkeeper/internal/logger"
	"github.com/mignatov/authkeeper/internal/session"
	"github.com/mignatov/authkeeper/internal/store"
	"github.com/mignatov/authkeeper/internal/utils"
	"github.com/mignatov/authkeeper/models"
)

// burnHash is a valid bcrypt hash of a random throwaway string. Login
// verifies against it when the username is unknown, so a missing account
// costs roughly the same as a wrong password.
const burnHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	appConfig      config.App
	logger         *logger.Logger
}

// NewAuthService wires the authentication rules to an account store, a
// password hasher, and the session token settings.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, appConfig config.App, log *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		appConfig:      appConfig,
		logger:         &logger.Logger{Logger: log.With().Str("component", "auth-service").Logger()},
	}
}

// Register creates a new account for the given credentials.
//
// The username is checked before the password is hashed, so a duplicate
// attempt never pays the hashing cost. The store's unique constraint is the
// authoritative guard: if a concurrent registration slips in between the
// check and the insert, the constraint violation is reported as the same
// UsernameTaken outcome.
func (s *authService) Register(ctx context.Context, username, password string) (RegisterResult, error) {
	if username == "" || password == "" {
		return RegisterResult{}, ErrInvalidDataProvided
	}

	_, err := s.userRepository.FindUserByUsername(ctx, username)
	if err == nil {
		s.logger.Debug().Str("username", username).Msg("registration refused: username taken")
		return RegisterResult{Status: RegisterUsernameTaken}, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return RegisterResult{}, fmt.Errorf("error occurred during username lookup: %w", err)
	}

	user, err := NewUser(username, password, s.hasher)
	if err != nil {
		return RegisterResult{}, err
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			s.logger.Debug().Str("username", username).Msg("registration refused: lost insert race")
			return RegisterResult{Status: RegisterUsernameTaken}, nil
		}
		return RegisterResult{}, fmt.Errorf("error occurred during user creation: %w", err)
	}

	s.logger.Info().Int64("user_id", created.UserID).Msg("user registered")
	return RegisterResult{Status: RegisterCreated, User: created}, nil
}

// Login verifies the credentials against the account store and, on success,
// establishes the identity in the supplied sink.
//
// An unknown username and a wrong password both produce LoginRejected with
// no session side effects; the caller cannot tell them apart.
func (s *authService) Login(ctx context.Context, username, password string, sink session.Sink) (LoginResult, error) {
	if username == "" || password == "" {
		return LoginResult{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// equalize timing with the wrong-password path
			s.hasher.Verify(password, burnHash)
			s.logger.Debug().Msg("login rejected")
			return LoginResult{Status: LoginRejected}, nil
		}
		return LoginResult{}, fmt.Errorf("error occurred during username lookup: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Debug().Msg("login rejected")
		return LoginResult{Status: LoginRejected}, nil
	}

	identity := session.Identity{UserID: user.UserID, Username: user.Username}
	sink.Establish(identity)

	s.logger.Info().Int64("user_id", user.UserID).Msg("login successful")
	return LoginResult{Status: LoginAuthenticated, Identity: identity}, nil
}

// Logout clears the session bound to sink. Calling it with no active
// session is a no-op.
func (s *authService) Logout(ctx context.Context, sink session.Sink) {
	sink.Clear()
	s.logger.Debug().Msg("session cleared")
}

// CreateSessionToken issues a signed session JWT for the given identity and
// session registry key.
func (s *authService) CreateSessionToken(ctx context.Context, identity session.Identity, sessionID string) (models.Token, error) {
	token, err := utils.GenerateSessionToken(
		s.appConfig.TokenIssuer,
		identity.UserID,
		sessionID,
		s.appConfig.SessionTTL,
		s.appConfig.TokenSignKey,
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// ParseSessionToken validates a raw session JWT string and extracts the
// user ID and session registry key from its claims.
func (s *authService) ParseSessionToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, s.appConfig.TokenSignKey, s.appConfig.TokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return token, nil
}
