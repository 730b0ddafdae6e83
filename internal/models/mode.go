package models

// Mode is the day's current display state.
type Mode string

const (
	// ModeMorning: no successful departure recorded for today yet.
	ModeMorning Mode = "morning"
	// ModeDeparture: departed within the last four hours.
	ModeDeparture Mode = "departure"
	// ModeReturn: departed more than four hours ago.
	ModeReturn Mode = "return"
)

// ModeInfo is the classifier result. DepartureTime is only set in
// departure mode and carries the stored time string for display.
type ModeInfo struct {
	Mode          Mode
	DepartureTime string
}
