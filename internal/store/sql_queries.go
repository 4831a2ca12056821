package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/mignatov/authkeeper/models"
)

// createUser inserts a new account row. The RETURNING clause hands back the
// canonical database representation so the caller receives the
// store-assigned user_id and created_at.
const createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, username, password_hash, created_at;`

// userColumns is the scan order shared by every user lookup.
var userColumns = []string{"user_id", "username", "password_hash", "created_at"}

// queryBuilder produces $N placeholders, understood by both the pgx and
// sqlite3 drivers.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// findUserByUsernameQuery builds the lookup used by login and by the
// pre-insert duplicate check.
func findUserByUsernameQuery(username string) (string, []any, error) {
	return queryBuilder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

// findUserByIDQuery builds the secondary lookup by store-assigned identity.
func findUserByIDQuery(userID int64) (string, []any, error) {
	return queryBuilder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
