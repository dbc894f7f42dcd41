// Package dbtest opens an isolated PostgreSQL schema for tests that need a
// real database. Tests are skipped when TEST_DATABASE_URL is unset.
package dbtest

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"assurance_backend/internals/configs"
	database "assurance_backend/internals/databases"
)

// Open returns a Store whose connections resolve tables in a fresh schema.
// The schema is dropped when the test finishes.
func Open(t *testing.T) *database.Store {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	schemaName := "t_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]

	admin, err := database.ConnectDB(configs.Config{DatabaseURL: dsn})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := admin.WithContext(ctx).Exec(fmt.Sprintf(`CREATE SCHEMA %q`, schemaName)).Error; err != nil {
		t.Fatalf("create schema: %v", err)
	}

	scoped, err := withSearchPath(dsn, schemaName)
	if err != nil {
		t.Fatalf("dsn: %v", err)
	}
	db, err := database.ConnectDB(configs.Config{DatabaseURL: scoped})
	if err != nil {
		t.Fatalf("connect scoped: %v", err)
	}
	if err := database.RunMigrations(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		database.Close(db)
		_ = admin.Exec(fmt.Sprintf(`DROP SCHEMA %q CASCADE`, schemaName)).Error
		database.Close(admin)
	})

	return database.NewStore(db, 5*time.Second)
}

// Exec runs raw SQL for fixtures.
func Exec(t *testing.T, db *gorm.DB, sql string, args ...any) {
	t.Helper()
	if err := db.Exec(sql, args...).Error; err != nil {
		t.Fatalf("exec %q: %v", sql, err)
	}
}

func withSearchPath(dsn, schema string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
