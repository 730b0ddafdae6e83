package utils

import (
	"fmt"
	"time"

	"github.com/ymatsuo/wasuremono/internal/constants"
)

// ParseTime parses a time string in the standard window format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseClock parses a recorded departure time, accepting both HH:MM:SS and
// HH:MM. Older records only carry minute precision.
func ParseClock(timeStr string) (time.Time, error) {
	t, err := time.Parse(constants.ClockFormat, timeStr)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time value %q: %w", timeStr, err)
	}
	return t, nil
}

// ValidateTimeFormat checks if the string matches the standard window format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// ValidateDateFormat checks if the string is a YYYY-MM-DD date.
func ValidateDateFormat(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// CombineDateAndClock pins a parsed time-of-day onto a concrete day in the
// given location, so elapsed time against "now" can be computed.
func CombineDateAndClock(day time.Time, clock time.Time) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		day.Location(),
	)
}
