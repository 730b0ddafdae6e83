package models

// DailySchedule is the configuration for one calendar date. Date is the
// natural key (YYYY-MM-DD); saving an existing date replaces every field.
type DailySchedule struct {
	Date             string
	ItemIDs          []int64
	DepartureMessage string
	ReturnMessage    string
	Restricted       bool
	StartTime        string // HH:MM
	EndTime          string // HH:MM
}

// ScheduleDetails is the admin view of one date's schedule, with item ids
// already resolved to names in stored order.
type ScheduleDetails struct {
	ItemNames        []string
	DepartureMessage string
	ReturnMessage    string
	Restricted       bool
	StartTime        string
	EndTime          string
}

// Messages holds the two per-date display messages.
type Messages struct {
	Departure string
	Return    string
}

// TimeRestriction is a date's departure window configuration.
type TimeRestriction struct {
	Restricted bool
	StartTime  string
	EndTime    string
}
