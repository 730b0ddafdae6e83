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
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestReadMigrationFiles(t *testing.T) {
	t.Run("sorted by version", func(t *testing.T) {
		fsys := fstest.MapFS{
			"002_add_notes.sql": {Data: []byte("ALTER TABLE a ADD COLUMN notes TEXT;")},
			"001_init.sql":      {Data: []byte("CREATE TABLE a (id INTEGER);")},
		}
		r := NewRunner(nil, fsys)

		migrations, err := r.ReadMigrationFiles()
		if err != nil {
			t.Fatalf("ReadMigrationFiles() error: %v", err)
		}
		if len(migrations) != 2 {
			t.Fatalf("got %d migrations, want 2", len(migrations))
		}
		if migrations[0].Version != 1 || migrations[0].Name != "init" {
			t.Errorf("first migration = %+v", migrations[0])
		}
		if migrations[1].Version != 2 || migrations[1].Name != "add_notes" {
			t.Errorf("second migration = %+v", migrations[1])
		}
	})

	t.Run("ignores non-sql files", func(t *testing.T) {
		fsys := fstest.MapFS{
			"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
			"README.md":    {Data: []byte("notes")},
		}
		r := NewRunner(nil, fsys)

		migrations, err := r.ReadMigrationFiles()
		if err != nil {
			t.Fatalf("ReadMigrationFiles() error: %v", err)
		}
		if len(migrations) != 1 {
			t.Errorf("got %d migrations, want 1", len(migrations))
		}
	})

	t.Run("rejects bad filenames", func(t *testing.T) {
		for _, name := range []string{"init.sql", "abc_init.sql", "000_init.sql"} {
			fsys := fstest.MapFS{name: {Data: []byte("SELECT 1;")}}
			r := NewRunner(nil, fsys)
			if _, err := r.ReadMigrationFiles(); err == nil {
				t.Errorf("ReadMigrationFiles() accepted %q", name)
			}
		}
	})

	t.Run("rejects duplicate versions", func(t *testing.T) {
		fsys := fstest.MapFS{
			"001_init.sql":  {Data: []byte("SELECT 1;")},
			"001_other.sql": {Data: []byte("SELECT 1;")},
		}
		r := NewRunner(nil, fsys)
		if _, err := r.ReadMigrationFiles(); err == nil {
			t.Error("ReadMigrationFiles() accepted duplicate versions")
		}
	})
}

func TestApplyMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql":      {Data: []byte("CREATE TABLE things (id INTEGER PRIMARY KEY, name TEXT);")},
		"002_add_notes.sql": {Data: []byte("ALTER TABLE things ADD COLUMN notes TEXT;")},
	}

	t.Run("applies pending and records version", func(t *testing.T) {
		db := openTestDB(t)
		r := NewRunner(db, fsys)

		applied, err := r.ApplyMigrations(nil)
		if err != nil {
			t.Fatalf("ApplyMigrations() error: %v", err)
		}
		if applied != 2 {
			t.Errorf("applied = %d, want 2", applied)
		}

		version, err := r.GetCurrentVersion()
		if err != nil {
			t.Fatalf("GetCurrentVersion() error: %v", err)
		}
		if version != 2 {
			t.Errorf("version = %d, want 2", version)
		}

		if _, err := db.Exec("INSERT INTO things (name, notes) VALUES ('a', 'b')"); err != nil {
			t.Errorf("migrated schema unusable: %v", err)
		}
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		db := openTestDB(t)
		r := NewRunner(db, fsys)

		if _, err := r.ApplyMigrations(nil); err != nil {
			t.Fatalf("ApplyMigrations() error: %v", err)
		}
		applied, err := r.ApplyMigrations(nil)
		if err != nil {
			t.Fatalf("ApplyMigrations() second run error: %v", err)
		}
		if applied != 0 {
			t.Errorf("second run applied %d migrations, want 0", applied)
		}
	})

	t.Run("failed migration rolls back", func(t *testing.T) {
		db := openTestDB(t)
		broken := fstest.MapFS{
			"001_init.sql": {Data: []byte("CREATE TABLE things (id INTEGER PRIMARY KEY);")},
			"002_bad.sql":  {Data: []byte("THIS IS NOT SQL;")},
		}
		r := NewRunner(db, broken)

		applied, err := r.ApplyMigrations(nil)
		if err == nil {
			t.Fatal("ApplyMigrations() succeeded on invalid SQL")
		}
		if applied != 1 {
			t.Errorf("applied = %d, want 1 before failure", applied)
		}

		version, _ := r.GetCurrentVersion()
		if version != 1 {
			t.Errorf("version = %d, want 1 after rollback", version)
		}
	})

	t.Run("newer database rejected", func(t *testing.T) {
		db := openTestDB(t)
		r := NewRunner(db, fsys)

		if err := r.EnsureSchemaVersionTable(); err != nil {
			t.Fatalf("EnsureSchemaVersionTable() error: %v", err)
		}
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (99)"); err != nil {
			t.Fatalf("failed to seed version: %v", err)
		}

		if _, err := r.ApplyMigrations(nil); err == nil {
			t.Error("ApplyMigrations() accepted a database newer than the app")
		}
		if err := r.ValidateVersion(); err == nil {
			t.Error("ValidateVersion() accepted a database newer than the app")
		}
	})
}
