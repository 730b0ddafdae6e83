package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	pq "github.com/lib/pq"

	"github.com/ymatsuo/wasuremono/internal/models"
)

func (s *Store) GetItem(name string) (models.Item, bool, error) {
	row := s.db.QueryRow("SELECT id, name, icon, created_at FROM items WHERE name = $1", name)

	var item models.Item
	var icon, createdAt sql.NullString
	err := row.Scan(&item.ID, &item.Name, &icon, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, false, nil
		}
		return models.Item{}, false, fmt.Errorf("failed to get item %q: %w", name, err)
	}
	item.Icon = icon.String
	item.CreatedAt = createdAt.String
	return item, true, nil
}

func (s *Store) CreateItem(name, icon string) (models.Item, error) {
	if _, err := s.db.Exec(
		"INSERT INTO items (name, icon) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING",
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

	rows, err := s.db.Query(
		"SELECT id, name, icon, created_at FROM items WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get items by id: %w", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

func (s *Store) DeleteItem(id int64) error {
	_, err := s.db.Exec("DELETE FROM items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	return nil
}

func collectItems(rows *sql.Rows) ([]models.Item, error) {
	var items []models.Item
	for rows.Next() {
		var item models.Item
		var icon, createdAt sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &icon, &createdAt); err != nil {
			return nil, err
		}
		item.Icon = icon.String
		item.CreatedAt = createdAt.String
		items = append(items, item)
	}
	return items, rows.Err()
}
