package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/julianstephens/habitflow/internal/errors"
	"github.com/julianstephens/habitflow/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := New(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func addTestHabit(t *testing.T, store *Store, name string) models.Habit {
	t.Helper()
	user, err := store.EnsureUser("tester")
	if err != nil {
		t.Fatalf("failed to ensure user: %v", err)
	}
	habit := models.Habit{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Name:      name,
		StartDate: time.Now().Format("2006-01-02"),
		CreatedAt: time.Now(),
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	return habit
}

func TestEnsureUserIdempotent(t *testing.T) {
	store := setupTestStore(t)

	first, err := store.EnsureUser("alex")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	second, err := store.EnsureUser("alex")
	if err != nil {
		t.Fatalf("failed to fetch existing user: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected same user ID on repeat, got %q and %q", first.ID, second.ID)
	}
}

func TestGetUserByNameNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetUserByName("nobody")
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestHabitLifecycle(t *testing.T) {
	store := setupTestStore(t)
	habit := addTestHabit(t, store, "Morning run")

	got, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if got.Name != "Morning run" {
		t.Errorf("expected name %q, got %q", "Morning run", got.Name)
	}

	byName, err := store.GetHabitByName(habit.UserID, "Morning run")
	if err != nil {
		t.Fatalf("failed to get habit by name: %v", err)
	}
	if byName.ID != habit.ID {
		t.Errorf("expected ID %q, got %q", habit.ID, byName.ID)
	}

	if err := store.DeleteHabit(habit.ID); err != nil {
		t.Fatalf("failed to delete habit: %v", err)
	}
	if _, err := store.GetHabit(habit.ID); !errors.Is(err, apperrors.ErrHabitNotFound) {
		t.Errorf("expected ErrHabitNotFound after delete, got %v", err)
	}

	if err := store.RestoreHabit(habit.UserID, "Morning run"); err != nil {
		t.Fatalf("failed to restore habit: %v", err)
	}
	if _, err := store.GetHabit(habit.ID); err != nil {
		t.Errorf("expected habit visible after restore, got %v", err)
	}
}

func TestHabitNamesScopedPerUser(t *testing.T) {
	store := setupTestStore(t)

	alex, err := store.EnsureUser("alex")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	sam, err := store.EnsureUser("sam")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	for _, userID := range []string{alex.ID, sam.ID} {
		habit := models.Habit{
			ID:        uuid.New().String(),
			UserID:    userID,
			Name:      "Read",
			StartDate: "2026-08-01",
			CreatedAt: time.Now(),
		}
		if err := store.AddHabit(habit); err != nil {
			t.Fatalf("failed to add habit for user %s: %v", userID, err)
		}
	}

	got, err := store.GetHabitByName(alex.ID, "Read")
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if got.UserID != alex.ID {
		t.Errorf("expected alex's habit, got owner %q", got.UserID)
	}
}

func TestRecordCheckinUnknownHabit(t *testing.T) {
	store := setupTestStore(t)

	err := store.RecordCheckin("no-such-habit", "2026-08-31", true)
	if !errors.Is(err, apperrors.ErrHabitNotFound) {
		t.Errorf("expected ErrHabitNotFound, got %v", err)
	}

	if _, err := store.CompletedDays("no-such-habit"); !errors.Is(err, apperrors.ErrHabitNotFound) {
		t.Errorf("expected ErrHabitNotFound from CompletedDays, got %v", err)
	}
}

func TestCompletedDaysOrdering(t *testing.T) {
	store := setupTestStore(t)
	habit := addTestHabit(t, store, "Meditate")

	// Insert out of order; the query must return descending days
	for _, day := range []string{"2026-08-29", "2026-08-31", "2026-08-30"} {
		if err := store.RecordCheckin(habit.ID, day, true); err != nil {
			t.Fatalf("failed to record check-in: %v", err)
		}
	}
	// A miss must not appear in completed days
	if err := store.RecordCheckin(habit.ID, "2026-08-28", false); err != nil {
		t.Fatalf("failed to record miss: %v", err)
	}

	days, err := store.CompletedDays(habit.ID)
	if err != nil {
		t.Fatalf("failed to get completed days: %v", err)
	}

	want := []string{"2026-08-31", "2026-08-30", "2026-08-29"}
	if len(days) != len(want) {
		t.Fatalf("expected %d days, got %d: %v", len(want), len(days), days)
	}
	for i, day := range want {
		if days[i] != day {
			t.Errorf("day[%d]: expected %s, got %s", i, day, days[i])
		}
	}
}

func TestCompletedDaysEmptyHistory(t *testing.T) {
	store := setupTestStore(t)
	habit := addTestHabit(t, store, "Journal")

	days, err := store.CompletedDays(habit.ID)
	if err != nil {
		t.Fatalf("failed to get completed days: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("expected empty history, got %v", days)
	}
}

func TestRecordCheckinLastWriteWins(t *testing.T) {
	store := setupTestStore(t)
	habit := addTestHabit(t, store, "Stretch")

	// Log "no" then change the answer to "yes" the same day
	if err := store.RecordCheckin(habit.ID, "2026-08-31", false); err != nil {
		t.Fatalf("failed to record miss: %v", err)
	}
	if err := store.RecordCheckin(habit.ID, "2026-08-31", true); err != nil {
		t.Fatalf("failed to re-record completion: %v", err)
	}

	days, err := store.CompletedDays(habit.ID)
	if err != nil {
		t.Fatalf("failed to get completed days: %v", err)
	}
	if len(days) != 1 || days[0] != "2026-08-31" {
		t.Errorf("expected single completed day after overwrite, got %v", days)
	}

	// And back to "no": the day must drop out of the completed set
	if err := store.RecordCheckin(habit.ID, "2026-08-31", false); err != nil {
		t.Fatalf("failed to overwrite with miss: %v", err)
	}
	days, err = store.CompletedDays(habit.ID)
	if err != nil {
		t.Fatalf("failed to get completed days: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("expected no completed days after overwrite with miss, got %v", days)
	}
}

func TestGetCheckinsForHabitKeepsMisses(t *testing.T) {
	store := setupTestStore(t)
	habit := addTestHabit(t, store, "Walk")

	if err := store.RecordCheckin(habit.ID, "2026-08-30", true); err != nil {
		t.Fatalf("failed to record check-in: %v", err)
	}
	if err := store.RecordCheckin(habit.ID, "2026-08-31", false); err != nil {
		t.Fatalf("failed to record miss: %v", err)
	}

	checkins, err := store.GetCheckinsForHabit(habit.ID, "2026-08-01", "2026-08-31")
	if err != nil {
		t.Fatalf("failed to get check-ins: %v", err)
	}
	if len(checkins) != 2 {
		t.Fatalf("expected 2 check-ins including the miss, got %d", len(checkins))
	}
	if checkins[0].Day != "2026-08-31" || checkins[0].Completed {
		t.Errorf("expected most recent check-in to be the miss, got %+v", checkins[0])
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("expected default settings after init: %v", err)
	}
	if settings.ReminderTime == "" {
		t.Error("expected default reminder time to be set")
	}

	settings.ReminderTime = "21:30"
	settings.ReminderEnabled = true
	settings.DefaultUser = "alex"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to reload settings: %v", err)
	}
	if got.ReminderTime != "21:30" || !got.ReminderEnabled || got.DefaultUser != "alex" {
		t.Errorf("settings did not round-trip: %+v", got)
	}
}
