package storage

import "github.com/julianstephens/habitflow/internal/models"

// Provider is the persistence boundary for the check-in core. The store
// exclusively owns the persisted history; readers never mutate it.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Users
	EnsureUser(name string) (models.User, error)
	GetUserByName(name string) (models.User, error)

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(userID, name string) (models.Habit, error)
	GetHabitsForUser(userID string) ([]models.Habit, error)
	DeleteHabit(id string) error
	RestoreHabit(userID, name string) error

	// Check-ins. RecordCheckin appends one record per (habit, day); a
	// second write for the same day replaces the first (last write
	// wins). CompletedDays returns every completed day for the habit,
	// most recent first.
	RecordCheckin(habitID, day string, completed bool) error
	CompletedDays(habitID string) ([]string, error)
	GetCheckinsForHabit(habitID, startDay, endDay string) ([]models.CheckIn, error)

	// Utils
	GetConfigPath() string
}
