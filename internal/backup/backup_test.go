package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/ymatsuo/wasuremono/internal/constants"
)

// createTestDB writes a tiny real database so VACUUM INTO has something to
// snapshot.
func createTestDB(t *testing.T, path string) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE marker (value TEXT)"); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	if _, err := db.Exec("INSERT INTO marker (value) VALUES ('original')"); err != nil {
		t.Fatalf("failed to seed test table: %v", err)
	}
}

func readMarker(t *testing.T, path string) string {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var value string
	if err := db.QueryRow("SELECT value FROM marker").Scan(&value); err != nil {
		t.Fatalf("failed to read marker: %v", err)
	}
	return value
}

func TestCreateBackup(t *testing.T) {
	t.Run("snapshots the database", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		createTestDB(t, dbPath)
		mgr := NewManager(dbPath)

		path, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup() error: %v", err)
		}

		name := filepath.Base(path)
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			t.Errorf("backup name %q does not match naming scheme", name)
		}
		if got := readMarker(t, path); got != "original" {
			t.Errorf("backup marker = %q, want original", got)
		}
	})

	t.Run("missing database", func(t *testing.T) {
		mgr := NewManager(filepath.Join(t.TempDir(), "absent.db"))
		if _, err := mgr.CreateBackup(); err == nil {
			t.Error("CreateBackup() succeeded without a database")
		}
	})

	t.Run("repeated backups get unique names", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		createTestDB(t, dbPath)
		mgr := NewManager(dbPath)

		seen := map[string]bool{}
		for i := 0; i < 3; i++ {
			path, err := mgr.CreateBackup()
			if err != nil {
				t.Fatalf("CreateBackup() #%d error: %v", i, err)
			}
			if seen[path] {
				t.Fatalf("duplicate backup path %s", path)
			}
			seen[path] = true
		}

		backups, err := mgr.ListBackups()
		if err != nil {
			t.Fatalf("ListBackups() error: %v", err)
		}
		if len(backups) != 3 {
			t.Errorf("ListBackups() = %d entries, want 3", len(backups))
		}
	})
}

func TestListBackups(t *testing.T) {
	t.Run("no backup directory", func(t *testing.T) {
		mgr := NewManager(filepath.Join(t.TempDir(), "test.db"))
		backups, err := mgr.ListBackups()
		if err != nil {
			t.Fatalf("ListBackups() error: %v", err)
		}
		if len(backups) != 0 {
			t.Errorf("ListBackups() = %d entries, want 0", len(backups))
		}
	})

	t.Run("ignores foreign files", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		createTestDB(t, dbPath)
		mgr := NewManager(dbPath)

		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup() error: %v", err)
		}
		stray := filepath.Join(mgr.GetBackupDir(), "notes.txt")
		if err := os.WriteFile(stray, []byte("x"), 0600); err != nil {
			t.Fatalf("failed to write stray file: %v", err)
		}

		backups, err := mgr.ListBackups()
		if err != nil {
			t.Fatalf("ListBackups() error: %v", err)
		}
		if len(backups) != 1 {
			t.Errorf("ListBackups() = %d entries, want 1", len(backups))
		}
	})
}

func TestRestoreBackup(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		createTestDB(t, dbPath)
		mgr := NewManager(dbPath)

		backupPath, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup() error: %v", err)
		}

		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			t.Fatalf("failed to reopen database: %v", err)
		}
		if _, err := db.Exec("UPDATE marker SET value = 'changed'"); err != nil {
			t.Fatalf("failed to modify database: %v", err)
		}
		db.Close()

		if err := mgr.RestoreBackup(backupPath); err != nil {
			t.Fatalf("RestoreBackup() error: %v", err)
		}
		if got := readMarker(t, dbPath); got != "original" {
			t.Errorf("marker after restore = %q, want original", got)
		}
	})

	t.Run("missing backup", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		createTestDB(t, dbPath)
		mgr := NewManager(dbPath)

		err := mgr.RestoreBackup(filepath.Join(mgr.GetBackupDir(), "nope.db"))
		if err == nil {
			t.Error("RestoreBackup() succeeded for a missing file")
		}
	})

	t.Run("rejects corrupt backup", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		createTestDB(t, dbPath)
		mgr := NewManager(dbPath)

		if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
			t.Fatalf("failed to create backup dir: %v", err)
		}
		corrupt := filepath.Join(mgr.GetBackupDir(), constants.BackupFilePrefix+"20240401-0755"+constants.BackupFileSuffix)
		if err := os.WriteFile(corrupt, []byte("garbage"), 0600); err != nil {
			t.Fatalf("failed to write corrupt file: %v", err)
		}

		if err := mgr.RestoreBackup(corrupt); err == nil {
			t.Error("RestoreBackup() accepted a corrupt file")
		}
		if got := readMarker(t, dbPath); got != "original" {
			t.Errorf("database touched by failed restore: marker = %q", got)
		}
	})
}
