package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ymatsuo/wasuremono/internal/models"
	"github.com/ymatsuo/wasuremono/internal/storage"
)

func (s *Store) GetSchedule(date string) (models.DailySchedule, bool, error) {
	row := s.db.QueryRow(`
		SELECT date, item_ids, departure_message, return_message,
		       is_time_restricted, start_time, end_time
		FROM daily_schedules WHERE date = ?`, date)

	var sched models.DailySchedule
	var itemIDs, depMsg, retMsg, restricted, start, end sql.NullString

	err := row.Scan(&sched.Date, &itemIDs, &depMsg, &retMsg, &restricted, &start, &end)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DailySchedule{}, false, nil
		}
		return models.DailySchedule{}, false, fmt.Errorf("failed to get schedule for %s: %w", date, err)
	}

	sched.ItemIDs = storage.DecodeItemIDs(itemIDs.String)
	sched.DepartureMessage = depMsg.String
	sched.ReturnMessage = retMsg.String
	sched.Restricted = storage.DecodeBool(restricted.String)
	sched.StartTime = start.String
	sched.EndTime = end.String

	return sched, true, nil
}

func (s *Store) SaveSchedule(sched models.DailySchedule) error {
	_, err := s.db.Exec(`
		INSERT INTO daily_schedules (date, item_ids, departure_message, return_message, is_time_restricted, start_time, end_time)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			item_ids=excluded.item_ids, departure_message=excluded.departure_message,
			return_message=excluded.return_message, is_time_restricted=excluded.is_time_restricted,
			start_time=excluded.start_time, end_time=excluded.end_time`,
		sched.Date, storage.EncodeItemIDs(sched.ItemIDs), sched.DepartureMessage, sched.ReturnMessage,
		storage.EncodeBool(sched.Restricted), sched.StartTime, sched.EndTime,
	)
	if err != nil {
		return fmt.Errorf("failed to save schedule for %s: %w", sched.Date, err)
	}
	return nil
}

func (s *Store) ScheduledDates(year, month int) ([]string, error) {
	pattern := fmt.Sprintf("%04d-%02d-%%", year, month)
	rows, err := s.db.Query("SELECT date FROM daily_schedules WHERE date LIKE ? ORDER BY date ASC", pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}
