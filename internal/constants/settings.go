package constants

const (
	// Default reminder slots seeded on init and used when settings are
	// absent or unreadable.
	DefaultMorningSlotID    = "morning"
	DefaultMorningSlotLabel = "Morning Prayer"
	DefaultMorningHour      = 7
	DefaultMorningMinute    = 0

	DefaultEveningSlotID    = "evening"
	DefaultEveningSlotLabel = "Evening Prayer"
	DefaultEveningHour      = 21
	DefaultEveningMinute    = 0

	// DefaultRemindersEnabled is the global reminder switch default
	DefaultRemindersEnabled = true

	// GenericSummary is the fallback summary when content analysis fails
	GenericSummary = "A moment of reflection"
)
