package constants

import "time"

const (
	AppName            = "selah"
	DefaultKeyringUser = "analysis-api-key"
	DefaultConfigPath  = "~/.config/selah/selah.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DefaultProfile is the profile used before the user creates any
	DefaultProfile = "default"

	// Notify constants
	NotifierLockfileName   = "selah-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.selahapp.selah"

	// PollInterval is how often the reminder engine re-evaluates the clock
	PollInterval = 60 * time.Second

	// RolloverInterval is how often the day-rollover watcher runs
	RolloverInterval = 5 * time.Minute
)
