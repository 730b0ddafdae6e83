package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ymatsuo/wasuremono/internal/models"
)

func (s *Store) GetHistory(date string) (models.HistoryRecord, bool, error) {
	row := s.db.QueryRow(
		"SELECT date, status, departure_time, points, created_at FROM history WHERE date = ?", date)

	var rec models.HistoryRecord
	var depTime, createdAt sql.NullString
	var points sql.NullInt64

	err := row.Scan(&rec.Date, &rec.Status, &depTime, &points, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HistoryRecord{}, false, nil
		}
		return models.HistoryRecord{}, false, fmt.Errorf("failed to get history for %s: %w", date, err)
	}

	rec.DepartureTime = depTime.String
	rec.Points = int(points.Int64)
	rec.CreatedAt = createdAt.String

	return rec, true, nil
}

func (s *Store) SaveHistory(rec models.HistoryRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO history (date, status, departure_time, points) VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			status=excluded.status, departure_time=excluded.departure_time, points=excluded.points`,
		rec.Date, rec.Status, rec.DepartureTime, rec.Points,
	)
	if err != nil {
		return fmt.Errorf("failed to save history for %s: %w", rec.Date, err)
	}
	return nil
}

func (s *Store) DeleteHistory(date string) error {
	_, err := s.db.Exec("DELETE FROM history WHERE date = ?", date)
	if err != nil {
		return fmt.Errorf("failed to delete history for %s: %w", date, err)
	}
	return nil
}

func (s *Store) HistoryForMonth(year, month int) ([]models.HistoryRecord, error) {
	pattern := fmt.Sprintf("%04d-%02d-%%", year, month)
	rows, err := s.db.Query(
		"SELECT date, status, departure_time, points, created_at FROM history WHERE date LIKE ? ORDER BY date ASC", pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var records []models.HistoryRecord
	for rows.Next() {
		var rec models.HistoryRecord
		var depTime, createdAt sql.NullString
		var points sql.NullInt64
		if err := rows.Scan(&rec.Date, &rec.Status, &depTime, &points, &createdAt); err != nil {
			return nil, err
		}
		rec.DepartureTime = depTime.String
		rec.Points = int(points.Int64)
		rec.CreatedAt = createdAt.String
		records = append(records, rec)
	}
	return records, rows.Err()
}
