package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time-of-day format for restriction windows (HH:MM)
	TimeFormat = "15:04"

	// ClockFormat is the format departure times are recorded in (HH:MM:SS)
	ClockFormat = "15:04:05"

	// DefaultWindowStart and DefaultWindowEnd bound the fallback departure
	// window used when a date has no schedule or a stored time is unreadable.
	DefaultWindowStart = "07:50"
	DefaultWindowEnd   = "08:10"
)
