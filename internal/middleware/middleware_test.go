package middleware

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/gau7ab/folio-go/internal/store"
)

// testDB creates a temporary migrated database for middleware tests.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp("", "folio-mw-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := store.Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	return db, func() {
		db.Close()
		os.Remove(dbPath)
	}
}

func createTestUser(t *testing.T, q *store.Queries, email string) store.User {
	t.Helper()

	now := time.Now()
	user, err := q.CreateUser(context.Background(), store.CreateUserParams{
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Name:         "Test User",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}
