// Package store implements the persistence layer of the application: the
// relational account store holding user records, reached through a narrow
// repository interface.
//
// Two backends are supported: PostgreSQL (via the pgx stdlib driver) for
// production and SQLite for local single-file deployments. Both enforce the
// unique-username constraint at the schema level; driver-specific constraint
// errors are normalised to the sentinel errors declared in this package.
package store

import (
	"context"

	"github.com/mignatov/authkeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the data-access contract for user accounts.
// The users relation is keyed uniquely by username and, secondarily, by the
// store-assigned numeric user_id.
//
// Implementations must be safe for concurrent use: the underlying
// connection pool is shared across simultaneous registration and login calls.
type UserRepository interface {
	// CreateUser persists a new user record and returns it with
	// store-assigned fields (UserID, CreatedAt) populated.
	// Returns ErrUsernameAlreadyExists if the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves the record with the given exact username.
	// Returns ErrUserNotFound if no such record exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID retrieves the record with the given numeric identity.
	// Returns ErrUserNotFound if no such record exists.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}
