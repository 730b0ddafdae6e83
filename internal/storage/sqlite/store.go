package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/ymatsuo/wasuremono/internal/constants"
	"github.com/ymatsuo/wasuremono/internal/migration"
	"github.com/ymatsuo/wasuremono/migrations"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := s.seed(); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'wasuremono init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.validateSchemaVersion(); err != nil {
		return err
	}

	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// seed writes the version markers and the starter catalog. Every statement
// is insert-or-ignore so reinitializing an existing database changes
// nothing.
func (s *Store) seed() error {
	if _, err := s.db.Exec(
		"INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)",
		constants.SettingAppVersion, constants.Version,
	); err != nil {
		return err
	}
	if _, err := s.db.Exec(
		"INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)",
		constants.SettingInstallID, uuid.New().String(),
	); err != nil {
		return err
	}

	stmt, err := s.db.Prepare("INSERT OR IGNORE INTO items (name, icon) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, item := range constants.SeedItems {
		if _, err := stmt.Exec(item.Name, item.Icon); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	_, err = runner.ApplyMigrations(nil)
	return err
}

func (s *Store) validateSchemaVersion() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	return runner.ValidateVersion()
}

func (s *Store) GetConfigPath() string {
	return s.path
}
