package constants

const (
	// Settings keys
	SettingReminderTime    = "reminder_time"
	SettingReminderEnabled = "reminder_enabled"
	SettingOpenAIModel     = "openai_model"
	SettingDefaultUser     = "default_user"

	// Default settings values
	DefaultReminderTime    = "09:00"
	DefaultReminderEnabled = false
	DefaultOpenAIModel     = "gpt-3.5-turbo"
)
