package constants

const (
	AppName           = "liftlog"
	DefaultStorePath  = "~/.config/liftlog/liftlog.db"
	DefaultConfigFile = "~/.config/liftlog/config.yaml"
	Version           = "v0.3.0"

	// DateFormat is the calendar-day format used for set entries and sessions (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ExportVersion tags export snapshots; import rejects anything else
	ExportVersion = "liftlog/v1"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "liftlog-"

	// Storage backends
	BackendSQLite = "sqlite"
	BackendJSON   = "json"

	// Persisted state keys
	KeyPresets     = "presets"
	KeySets        = "sets"
	KeySession     = "session"
	KeySwapHistory = "swapHistory"
)

// StateKeys lists every persisted key in save order.
var StateKeys = []string{KeyPresets, KeySets, KeySession, KeySwapHistory}
