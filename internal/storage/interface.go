package storage

import "github.com/selahapp/selah/internal/models"

// Provider persists the state that must survive a session restart: reminder
// settings and per-day completion records, keyed by profile, plus the
// profile registry itself. Journal entries live in the archive collaborator,
// not here.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Profiles
	EnsureProfile(name string) error
	ListProfiles() ([]string, error)
	GetActiveProfile() (string, error)
	SetActiveProfile(name string) error

	// Reminder settings. Absent or corrupt data yields the default settings
	// value rather than an error (reminders fail safe to their defaults).
	GetReminderSettings(profile string) (models.ReminderSettings, error)
	SaveReminderSettings(profile string, settings models.ReminderSettings) error

	// Completion records. The bool reports whether a record existed for the
	// given day.
	GetCompletionRecord(profile, day string) (models.CompletionRecord, bool, error)
	SaveCompletionRecord(profile string, record models.CompletionRecord) error
	ListCompletionRecords(profile string) ([]models.CompletionRecord, error)

	// Utils
	GetConfigPath() string
}
