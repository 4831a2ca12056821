// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Ignatov

package store

import (
	"database/sql"

	"github.com/mignatov/authkeeper/internal/logger"
	"github.com/mignatov/authkeeper/migrations"
)

// DB wraps the shared *sql.DB connection pool together with the
// backend-specific error classifier. Ownership of the pool belongs here;
// repositories borrow it and must not close it.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// Migrate applies the embedded schema migrations. Only meaningful for the
// PostgreSQL backend; the SQLite backend bootstraps its schema at connect
// time.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
