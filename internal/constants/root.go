package constants

import "time"

const (
	AppName            = "wasuremono"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/wasuremono/wasuremono.db"
	Version            = "v1.0.0"

	// Settings keys written at first initialization
	SettingAppVersion = "app_version"
	SettingInstallID  = "install_id"

	// DepartureWindow is how long after a recorded departure the day stays
	// in departure mode before flipping to return mode.
	DepartureWindow = 4 * time.Hour

	// StatusSuccess is the history status written by a recorded departure.
	StatusSuccess = "success"

	// DefaultItemIcon is assigned to catalog items created implicitly by
	// saving a schedule with a never-before-seen name.
	DefaultItemIcon = "🎒"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "wasuremono-"
	BackupFileSuffix = ".db"
)

// SeedItem is a default catalog entry inserted at first initialization.
type SeedItem struct {
	Name string
	Icon string
}

// SeedItems is the starter catalog for a fresh database. Insertion is
// idempotent by name, so re-running init never duplicates them.
var SeedItems = []SeedItem{
	{"ランドセル", "🎒"},
	{"ぼうし", "🧢"},
	{"すいとう", "🍶"},
	{"給食袋", "🍱"},
	{"リコーダー", "🎵"},
}
