// ABOUTME: Shared test setup and tests for the SQLite store lifecycle.
package storage

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTestDB creates a store backed by a throwaway database file.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestOpenCreatesParentDir(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "vitals.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("expected database file to exist: %v", err)
	}
}

func TestOpenRestrictsPermissions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "vitals.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	info, err := os.Stat(dbPath)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected file mode 0600, got %o", perm)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "vitals.db")

	db1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	db1.Close()

	// Reopening an existing database must not fail on schema setup
	db2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("second open failed: %v", err)
	}
	db2.Close()
}
