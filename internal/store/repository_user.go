// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Ignatov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mignatov/authkeeper/internal/logger"
	"github.com/mignatov/authkeeper/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table
// and works unchanged over both the PostgreSQL and SQLite backends; the
// [DB]'s error classifier absorbs the driver differences.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with store-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique constraint violation → [ErrUsernameAlreadyExists]. This covers
//     the race where a concurrent registration passed the duplicate check
//     and inserted the same username first.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.PasswordHash)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")
		return models.User{}, r.classifyInsertError(err)
	}

	// scan saved user from db
	if err := row.Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, r.classifyInsertError(err)
	}

	return user, nil
}

// FindUserByUsername retrieves the user record whose username matches
// exactly. Returns [ErrUserNotFound] for an empty result set; any other
// driver-level error is wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := findUserByUsernameQuery(username)
	if err != nil {
		return models.User{}, fmt.Errorf("error building sql query: %w", err)
	}

	return r.findOne(ctx, query, args)
}

// FindUserByID retrieves the user record with the given store-assigned
// numeric identity. Returns [ErrUserNotFound] for an empty result set; any
// other driver-level error is wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := findUserByIDQuery(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error building sql query: %w", err)
	}

	return r.findOne(ctx, query, args)
}

func (r *userRepository) findOne(ctx context.Context, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: query failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.PasswordHash, &foundUser.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// classifyInsertError maps a driver error raised by the INSERT to the
// repository's sentinel errors via the backend-specific classifier.
func (r *userRepository) classifyInsertError(err error) error {
	switch r.db.errorClassifier.Classify(err) {
	case UniqueViolation:
		return ErrUsernameAlreadyExists
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
