package store

import (
	"context"
	"fmt"

	"github.com/mignatov/authkeeper/internal/config"
	"github.com/mignatov/authkeeper/internal/logger"
)

// Storages aggregates every repository of the application over one shared
// database connection pool.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
}

// NewStorages opens the account store selected by cfg (PostgreSQL or
// SQLite), runs schema setup, and wires the repositories on top of it.
//
// Returns [ErrUnsupportedDriver] for an unknown driver name.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			return nil, fmt.Errorf("error migrating database: %w", err)
		}
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, cfg.DB.Driver)
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
	}, nil
}

// Close releases the shared connection pool.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
