package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ymatsuo/wasuremono/internal/models"
)

func (s *Store) GetItem(name string) (models.Item, bool, error) {
	row := s.db.QueryRow("SELECT id, name, icon, created_at FROM items WHERE name = ?", name)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, false, nil
		}
		return models.Item{}, false, fmt.Errorf("failed to get item %q: %w", name, err)
	}
	return item, true, nil
}

func (s *Store) CreateItem(name, icon string) (models.Item, error) {
	// The name uniqueness constraint makes this a no-op for an existing
	// name; the existing row wins, including its icon.
	if _, err := s.db.Exec(
		"INSERT INTO items (name, icon) VALUES (?, ?) ON CONFLICT(name) DO NOTHING",
		name, icon,
	); err != nil {
		return models.Item{}, fmt.Errorf("failed to create item %q: %w", name, err)
	}

	item, found, err := s.GetItem(name)
	if err != nil {
		return models.Item{}, err
	}
	if !found {
		return models.Item{}, fmt.Errorf("item %q missing after insert", name)
	}
	return item, nil
}

func (s *Store) ListItems() ([]models.Item, error) {
	rows, err := s.db.Query("SELECT id, name, icon, created_at FROM items ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

func (s *Store) GetItemsByID(ids []int64) ([]models.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.Query(
		"SELECT id, name, icon, created_at FROM items WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get items by id: %w", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

func (s *Store) DeleteItem(id int64) error {
	// No cascade: schedules keep referencing the id and readers drop it.
	_, err := s.db.Exec("DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var item models.Item
	var icon, createdAt sql.NullString
	if err := row.Scan(&item.ID, &item.Name, &icon, &createdAt); err != nil {
		return models.Item{}, err
	}
	item.Icon = icon.String
	item.CreatedAt = createdAt.String
	return item, nil
}

func collectItems(rows *sql.Rows) ([]models.Item, error) {
	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
