package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitflow/internal/models"
)

// RecordCheckin appends a check-in for the habit on the given day. The
// history is append-only with one authoritative row per (habit, day):
// recording the same day again replaces the earlier value (last write
// wins). The habit must exist.
func (s *Store) RecordCheckin(habitID, day string, completed bool) error {
	if _, err := s.GetHabit(habitID); err != nil {
		return err
	}

	checkin := models.CheckIn{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		Day:       day,
		Completed: completed,
		CreatedAt: time.Now().UTC(),
	}
	if err := checkin.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO checkins (id, habit_id, day, completed, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, day) DO UPDATE SET
			completed = excluded.completed,
			created_at = excluded.created_at`,
		checkin.ID, checkin.HabitID, checkin.Day, boolToInt(checkin.Completed),
		checkin.CreatedAt.Format(time.RFC3339))
	return err
}

// CompletedDays returns every day the habit was completed, most recent
// first. A habit with no completions yields an empty slice.
func (s *Store) CompletedDays(habitID string) ([]string, error) {
	if _, err := s.GetHabit(habitID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT day FROM checkins
		WHERE habit_id = ? AND completed = 1
		ORDER BY day DESC`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := []string{}
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, rows.Err()
}

func (s *Store) GetCheckinsForHabit(habitID, startDay, endDay string) ([]models.CheckIn, error) {
	if _, err := s.GetHabit(habitID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT id, habit_id, day, completed, created_at
		FROM checkins
		WHERE habit_id = ? AND day >= ? AND day <= ?
		ORDER BY day DESC`, habitID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkins []models.CheckIn
	for rows.Next() {
		var c models.CheckIn
		var completed int
		var createdAt string

		if err := rows.Scan(&c.ID, &c.HabitID, &c.Day, &completed, &createdAt); err != nil {
			return nil, err
		}
		c.Completed = completed != 0

		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for check-in %s: %w", c.ID, err)
		}
		c.CreatedAt = t

		checkins = append(checkins, c)
	}

	return checkins, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
