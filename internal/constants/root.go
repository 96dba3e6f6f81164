package constants

import "time"

const (
	AppName           = "habitflow"
	DefaultConfigPath = "~/.config/habitflow/habitflow.db"
	Version           = "v0.3.0"

	// DateFormat is the standard calendar-day format used throughout the
	// application (YYYY-MM-DD). Check-ins are keyed by this format.
	DateFormat = "2006-01-02"

	// TimeFormat is the standard clock format used for reminder times (HH:MM)
	TimeFormat = "15:04"

	// DefaultKeyringUser is the keyring account under which the OpenAI API
	// key is stored
	DefaultKeyringUser = "openai-api-key"

	// EnvAPIKey is checked before the OS keyring when resolving credentials
	EnvAPIKey = "OPENAI_API_KEY"
	EnvUser   = "HABITFLOW_USER"

	// Reminder constants
	ReminderLockfileName    = "habitflow-reminder.lock"
	DefaultReminderInterval = 60 * time.Second

	// Enrichment constants
	EnrichmentMaxRetries = 3
	EnrichmentTimeout    = 15 * time.Second
)
