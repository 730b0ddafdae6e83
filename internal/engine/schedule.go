package engine

import (
	"fmt"
	"strings"

	"github.com/ymatsuo/wasuremono/internal/constants"
	"github.com/ymatsuo/wasuremono/internal/logger"
	"github.com/ymatsuo/wasuremono/internal/models"
	"github.com/ymatsuo/wasuremono/internal/utils"
)

// ItemsForDate resolves the concrete item list for a date in stored order.
// Ids that no longer resolve to a catalog row are dropped silently; item
// deletion does not cascade into schedules.
func (e *Engine) ItemsForDate(date string) []models.Item {
	sched, found, err := e.store.GetSchedule(date)
	if err != nil {
		logger.Error("Failed to read schedule", "date", date, "error", err)
		return nil
	}
	if !found || len(sched.ItemIDs) == 0 {
		return nil
	}

	rows, err := e.store.GetItemsByID(sched.ItemIDs)
	if err != nil {
		logger.Error("Failed to resolve scheduled items", "date", date, "error", err)
		return nil
	}

	byID := make(map[int64]models.Item, len(rows))
	for _, item := range rows {
		byID[item.ID] = item
	}

	// Stored order wins, not id order.
	var items []models.Item
	for _, id := range sched.ItemIDs {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}
	return items
}

// MessagesForDate returns the date's two display messages, empty when no
// schedule exists.
func (e *Engine) MessagesForDate(date string) models.Messages {
	sched, found, err := e.store.GetSchedule(date)
	if err != nil {
		logger.Error("Failed to read schedule", "date", date, "error", err)
		return models.Messages{}
	}
	if !found {
		return models.Messages{}
	}
	return models.Messages{
		Departure: sched.DepartureMessage,
		Return:    sched.ReturnMessage,
	}
}

// TimeRestrictionForDate returns the date's departure window. Without a
// schedule, or when a stored time is unreadable, the fixed default window
// applies (unrestricted, 07:50-08:10).
func (e *Engine) TimeRestrictionForDate(date string) models.TimeRestriction {
	restriction := models.TimeRestriction{
		Restricted: false,
		StartTime:  constants.DefaultWindowStart,
		EndTime:    constants.DefaultWindowEnd,
	}

	sched, found, err := e.store.GetSchedule(date)
	if err != nil {
		logger.Error("Failed to read schedule", "date", date, "error", err)
		return restriction
	}
	if !found {
		return restriction
	}

	restriction.Restricted = sched.Restricted
	if sched.StartTime != "" && utils.ValidateTimeFormat(sched.StartTime) {
		restriction.StartTime = sched.StartTime
	}
	if sched.EndTime != "" && utils.ValidateTimeFormat(sched.EndTime) {
		restriction.EndTime = sched.EndTime
	}
	return restriction
}

// DepartureAllowed reports whether the clock currently falls inside
// today's departure window, alongside the window itself for display.
// Unrestricted days always allow departure; an unreadable stored window
// fails open.
func (e *Engine) DepartureAllowed() (bool, models.TimeRestriction) {
	restriction := e.TimeRestrictionForDate(e.Today())
	if !restriction.Restricted {
		return true, restriction
	}

	start, err := utils.ParseTime(restriction.StartTime)
	if err != nil {
		return true, restriction
	}
	end, err := utils.ParseTime(restriction.EndTime)
	if err != nil {
		return true, restriction
	}

	now := e.clock.Now()
	minutes := now.Hour()*60 + now.Minute()
	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	return minutes >= startMin && minutes <= endMin, restriction
}

// ScheduleDetails is the admin view of one date: item names in stored
// order plus messages and window.
func (e *Engine) ScheduleDetails(date string) models.ScheduleDetails {
	details := models.ScheduleDetails{
		StartTime: constants.DefaultWindowStart,
		EndTime:   constants.DefaultWindowEnd,
	}

	sched, found, err := e.store.GetSchedule(date)
	if err != nil {
		logger.Error("Failed to read schedule", "date", date, "error", err)
		return details
	}
	if !found {
		return details
	}

	details.DepartureMessage = sched.DepartureMessage
	details.ReturnMessage = sched.ReturnMessage
	details.Restricted = sched.Restricted
	if sched.StartTime != "" && utils.ValidateTimeFormat(sched.StartTime) {
		details.StartTime = sched.StartTime
	}
	if sched.EndTime != "" && utils.ValidateTimeFormat(sched.EndTime) {
		details.EndTime = sched.EndTime
	}

	for _, item := range e.ItemsForDate(date) {
		details.ItemNames = append(details.ItemNames, item.Name)
	}
	return details
}

// SaveScheduleFromNames is the admin write path. Names are trimmed, blanks
// dropped, and each distinct new name grows the catalog permanently; the
// resulting ids are stored in input order.
func (e *Engine) SaveScheduleFromNames(date string, itemNames []string, depMsg, retMsg string, restricted bool, start, end string) error {
	ids, err := e.resolveItemIDs(itemNames)
	if err != nil {
		return err
	}
	return e.saveSchedule(date, ids, depMsg, retMsg, restricted, start, end)
}

// SaveBulkSchedule resolves item ids exactly once and applies the same
// schedule payload to every date independently. A later date failing leaves
// earlier dates written; each upsert is its own unit of atomicity.
func (e *Engine) SaveBulkSchedule(dates []string, itemNames []string, depMsg, retMsg string, restricted bool, start, end string) error {
	ids, err := e.resolveItemIDs(itemNames)
	if err != nil {
		return err
	}
	for _, date := range dates {
		if err := e.saveSchedule(date, ids, depMsg, retMsg, restricted, start, end); err != nil {
			return fmt.Errorf("bulk save stopped at %s: %w", date, err)
		}
	}
	return nil
}

// ScheduledDatesInMonth lists the dates in a month that have a schedule
// row, for marking a calendar.
func (e *Engine) ScheduledDatesInMonth(year, month int) []string {
	dates, err := e.store.ScheduledDates(year, month)
	if err != nil {
		logger.Error("Failed to list scheduled dates", "year", year, "month", month, "error", err)
		return nil
	}
	return dates
}

func (e *Engine) resolveItemIDs(itemNames []string) ([]int64, error) {
	var ids []int64
	for _, name := range itemNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		item, found, err := e.store.GetItem(name)
		if err != nil {
			return nil, err
		}
		if !found {
			item, err = e.store.CreateItem(name, constants.DefaultItemIcon)
			if err != nil {
				return nil, err
			}
		}
		ids = append(ids, item.ID)
	}
	return ids, nil
}

func (e *Engine) saveSchedule(date string, ids []int64, depMsg, retMsg string, restricted bool, start, end string) error {
	startAt, err := utils.ParseTime(start)
	if err != nil {
		return fmt.Errorf("invalid start time %q: %w", start, err)
	}
	endAt, err := utils.ParseTime(end)
	if err != nil {
		return fmt.Errorf("invalid end time %q: %w", end, err)
	}

	return e.store.SaveSchedule(models.DailySchedule{
		Date:             date,
		ItemIDs:          ids,
		DepartureMessage: depMsg,
		ReturnMessage:    retMsg,
		Restricted:       restricted,
		StartTime:        startAt.Format(constants.TimeFormat),
		EndTime:          endAt.Format(constants.TimeFormat),
	})
}
