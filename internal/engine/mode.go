package engine

import (
	"github.com/ymatsuo/wasuremono/internal/constants"
	"github.com/ymatsuo/wasuremono/internal/logger"
	"github.com/ymatsuo/wasuremono/internal/models"
	"github.com/ymatsuo/wasuremono/internal/utils"
)

// CurrentMode classifies the day:
//
//	morning   — no successful departure recorded for today
//	departure — departed less than four hours ago
//	return    — departed four or more hours ago
//
// This is a read path for a child-facing display: any failure degrades to
// morning with a logged diagnostic rather than surfacing an error.
func (e *Engine) CurrentMode() models.ModeInfo {
	now := e.clock.Now()
	today := now.Format(constants.DateFormat)

	rec, found, err := e.store.GetHistory(today)
	if err != nil {
		logger.Error("Failed to read today's history", "date", today, "error", err)
		return models.ModeInfo{Mode: models.ModeMorning}
	}
	if !found || rec.Status != constants.StatusSuccess {
		return models.ModeInfo{Mode: models.ModeMorning}
	}

	depClock, err := utils.ParseClock(rec.DepartureTime)
	if err != nil {
		logger.Warn("Malformed departure time in history", "date", today, "value", rec.DepartureTime, "error", err)
		return models.ModeInfo{Mode: models.ModeMorning}
	}

	depAt := utils.CombineDateAndClock(now, depClock)
	if now.Sub(depAt) < constants.DepartureWindow {
		return models.ModeInfo{Mode: models.ModeDeparture, DepartureTime: rec.DepartureTime}
	}
	return models.ModeInfo{Mode: models.ModeReturn}
}
