package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitflow/internal/models"
)

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
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (habit_id, day) DO UPDATE SET
			completed = excluded.completed,
			created_at = excluded.created_at`,
		checkin.ID, checkin.HabitID, checkin.Day, checkin.Completed,
		checkin.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) CompletedDays(habitID string) ([]string, error) {
	if _, err := s.GetHabit(habitID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT day FROM checkins
		WHERE habit_id = $1 AND completed
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
		WHERE habit_id = $1 AND day >= $2 AND day <= $3
		ORDER BY day DESC`, habitID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkins []models.CheckIn
	for rows.Next() {
		var c models.CheckIn
		var createdAt string

		if err := rows.Scan(&c.ID, &c.HabitID, &c.Day, &c.Completed, &createdAt); err != nil {
			return nil, err
		}

		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for check-in %s: %w", c.ID, err)
		}
		c.CreatedAt = t

		checkins = append(checkins, c)
	}

	return checkins, rows.Err()
}
