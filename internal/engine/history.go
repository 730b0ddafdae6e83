package engine

import (
	"strconv"
	"strings"

	"github.com/ymatsuo/wasuremono/internal/constants"
	"github.com/ymatsuo/wasuremono/internal/logger"
	"github.com/ymatsuo/wasuremono/internal/models"
)

// RecordDeparture writes today's history record with the current wall-clock
// time. Re-departing the same day silently replaces the earlier timestamp.
func (e *Engine) RecordDeparture() error {
	now := e.clock.Now()
	return e.store.SaveHistory(models.HistoryRecord{
		Date:          now.Format(constants.DateFormat),
		Status:        constants.StatusSuccess,
		DepartureTime: now.Format(constants.ClockFormat),
	})
}

// MonthlyHistory returns the month's departure outcomes keyed by the
// numeric day of month.
func (e *Engine) MonthlyHistory(year, month int) map[int]models.DayHistory {
	records, err := e.store.HistoryForMonth(year, month)
	if err != nil {
		logger.Error("Failed to read monthly history", "year", year, "month", month, "error", err)
		return map[int]models.DayHistory{}
	}

	history := make(map[int]models.DayHistory, len(records))
	for _, rec := range records {
		parts := strings.Split(rec.Date, "-")
		if len(parts) != 3 {
			continue
		}
		day, err := strconv.Atoi(parts[2])
		if err != nil {
			continue
		}
		history[day] = models.DayHistory{
			Status: rec.Status,
			Time:   rec.DepartureTime,
		}
	}
	return history
}

// ResetToday deletes today's history record outright, returning the day to
// morning mode on the next query. No neutral placeholder row is written.
func (e *Engine) ResetToday() error {
	return e.store.DeleteHistory(e.Today())
}
