package storage

import "github.com/ymatsuo/wasuremono/internal/models"

// Provider is the durable store for the four entities: catalog items,
// per-date schedules, per-date departure history, and settings.
//
// Reads on a missing key report absence through the bool result instead of
// an error; absence is the normal "not yet configured" case. Errors mean
// the storage layer itself failed.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Items
	GetItem(name string) (models.Item, bool, error)
	// CreateItem is idempotent by name: inserting an existing name is a
	// no-op that returns the existing row.
	CreateItem(name, icon string) (models.Item, error)
	ListItems() ([]models.Item, error)
	GetItemsByID(ids []int64) ([]models.Item, error)
	// DeleteItem removes the item only; schedules referencing the id keep
	// their dangling reference and readers filter it out.
	DeleteItem(id int64) error

	// Schedules
	GetSchedule(date string) (models.DailySchedule, bool, error)
	// SaveSchedule is a full upsert keyed by date: every non-key field is
	// replaced, never merged.
	SaveSchedule(schedule models.DailySchedule) error
	ScheduledDates(year, month int) ([]string, error)

	// History
	GetHistory(date string) (models.HistoryRecord, bool, error)
	SaveHistory(record models.HistoryRecord) error
	DeleteHistory(date string) error
	HistoryForMonth(year, month int) ([]models.HistoryRecord, error)

	// Settings
	GetSetting(key string) (string, bool, error)
	SaveSetting(key, value string) error

	// Utils
	GetConfigPath() string
}
