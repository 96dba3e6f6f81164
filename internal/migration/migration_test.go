package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyMigrations(t *testing.T) {
	db := openTestDB(t)

	fsys := fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte(`CREATE TABLE widgets (id TEXT PRIMARY KEY, name TEXT NOT NULL);`),
		},
		"002_add_color.sql": &fstest.MapFile{
			Data: []byte(`ALTER TABLE widgets ADD COLUMN color TEXT;`),
		},
	}

	runner := NewRunner(db, fsys)

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 migrations applied, got %d", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("failed to get current version: %v", err)
	}
	if version != 2 {
		t.Errorf("expected schema version 2, got %d", version)
	}

	// Re-applying is a no-op
	applied, err = runner.Apply(nil)
	if err != nil {
		t.Fatalf("re-apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected 0 migrations on re-apply, got %d", applied)
	}
}

func TestReadRejectsBadFilenames(t *testing.T) {
	db := openTestDB(t)

	fsys := fstest.MapFS{
		"init.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
	}

	if _, err := NewRunner(db, fsys).Read(); err == nil {
		t.Error("expected error for migration file without version prefix")
	}
}

func TestReadRejectsDuplicateVersions(t *testing.T) {
	db := openTestDB(t)

	fsys := fstest.MapFS{
		"001_a.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
		"001_b.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
	}

	if _, err := NewRunner(db, fsys).Read(); err == nil {
		t.Error("expected error for duplicate migration versions")
	}
}

func TestValidateVersionRejectsNewerSchema(t *testing.T) {
	db := openTestDB(t)

	fsys := fstest.MapFS{
		"001_init.sql": &fstest.MapFile{Data: []byte(`CREATE TABLE t (id TEXT);`)},
	}

	runner := NewRunner(db, fsys)
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("failed to apply: %v", err)
	}

	// Simulate a database written by a newer build
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}

	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected validation error for newer schema version")
	}
}
