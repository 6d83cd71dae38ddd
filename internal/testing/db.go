// Package testing provides testing utilities and helpers for the advisor service.
package testing

import (
	"path/filepath"
	"testing"

	"github.com/aristath/cryptoadvisor/internal/database"
)

// NewTestDB creates a temporary SQLite database for testing with automatic schema migration.
// The database lives in t.TempDir() and is closed when the test finishes.
//
// name selects the schema the same way production does ("advisor" applies
// advisor_schema.sql); unknown names yield an empty database.
func NewTestDB(t *testing.T, name string) *database.DB {
	t.Helper()

	db, err := database.New(database.Config{
		Path:    filepath.Join(t.TempDir(), name+".db"),
		Profile: database.ProfileStandard,
		Name:    name,
	})
	if err != nil {
		t.Fatalf("Failed to create test database %s: %v", name, err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		t.Fatalf("Failed to migrate test database %s: %v", name, err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: Failed to close test database %s: %v", name, err)
		}
	})

	return db
}
