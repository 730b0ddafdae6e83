package models

// HistoryRecord is the outcome of departure for one calendar date. At most
// one record exists per date; re-departing overwrites it.
type HistoryRecord struct {
	Date          string
	Status        string
	DepartureTime string // HH:MM:SS
	Points        int    // stored but not consulted by the engine
	CreatedAt     string
}

// DayHistory is one day's entry in a monthly history view.
type DayHistory struct {
	Status string
	Time   string
}
