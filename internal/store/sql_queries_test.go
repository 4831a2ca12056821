package store

import (
	"strings"
	"testing"

	"github.com/mignatov/authkeeper/models"
)

func TestFindUserByUsernameQuery(t *testing.T) {
	query, args, err := findUserByUsernameQuery("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "FROM users") {
		t.Errorf("expected query to target users table, got: %s", query)
	}
	if !strings.Contains(query, "username = $1") {
		t.Errorf("expected username placeholder, got: %s", query)
	}
	if len(args) != 1 || args[0] != "alice" {
		t.Errorf("expected args [alice], got: %v", args)
	}
}

func TestFindUserByIDQuery(t *testing.T) {
	query, args, err := findUserByIDQuery(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "FROM "+models.User{}.TableName()) {
		t.Errorf("expected query to target the users table, got: %s", query)
	}
	if !strings.Contains(query, "user_id = $1") {
		t.Errorf("expected user_id placeholder, got: %s", query)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Errorf("expected args [7], got: %v", args)
	}
}

// Both lookups must scan the same column set in the same order.
func TestLookupQueries_SelectAllUserColumns(t *testing.T) {
	query, _, err := findUserByUsernameQuery("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, column := range userColumns {
		if !strings.Contains(query, column) {
			t.Errorf("expected query to select %s, got: %s", column, query)
		}
	}
}
