package models

// Settings are application-level preferences kept in the settings table.
type Settings struct {
	ReminderTime    string `json:"reminder_time"` // HH:MM
	ReminderEnabled bool   `json:"reminder_enabled"`
	OpenAIModel     string `json:"openai_model"`
	DefaultUser     string `json:"default_user"`
}
