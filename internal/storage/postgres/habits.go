package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/julianstephens/habitflow/internal/errors"
	"github.com/julianstephens/habitflow/internal/models"
)

func (s *Store) AddHabit(habit models.Habit) error {
	if err := habit.Validate(); err != nil {
		return err
	}

	var deletedAt sql.NullString
	if habit.DeletedAt != nil {
		deletedAt = sql.NullString{String: habit.DeletedAt.Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, user_id, name, start_date, created_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		habit.ID, habit.UserID, habit.Name, habit.StartDate,
		habit.CreatedAt.Format(time.RFC3339), deletedAt)
	return err
}

func scanHabit(row interface{ Scan(...interface{}) error }) (models.Habit, error) {
	var h models.Habit
	var createdAt string
	var deletedAt sql.NullString

	if err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.StartDate, &createdAt, &deletedAt); err != nil {
		return models.Habit{}, err
	}

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	h.CreatedAt = t

	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse deleted_at: %w", err)
		}
		h.DeletedAt = &t
	}

	return h, nil
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, name, start_date, created_at, deleted_at
		FROM habits WHERE id = $1 AND deleted_at IS NULL`, id)

	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, fmt.Errorf("%w: %s", apperrors.ErrHabitNotFound, id)
		}
		return models.Habit{}, err
	}
	return habit, nil
}

func (s *Store) GetHabitByName(userID, name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, name, start_date, created_at, deleted_at
		FROM habits WHERE user_id = $1 AND name = $2 AND deleted_at IS NULL`, userID, name)

	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, fmt.Errorf("%w: %q", apperrors.ErrHabitNotFound, name)
		}
		return models.Habit{}, err
	}
	return habit, nil
}

func (s *Store) GetHabitsForUser(userID string) ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, name, start_date, created_at, deleted_at
		FROM habits WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}

	return habits, rows.Err()
}

func (s *Store) DeleteHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: habit %s (or already deleted)", apperrors.ErrHabitNotFound, id)
	}

	return nil
}

func (s *Store) RestoreHabit(userID, name string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET deleted_at = NULL
		WHERE user_id = $1 AND name = $2 AND deleted_at IS NOT NULL`, userID, name)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: no deleted habit %q", apperrors.ErrHabitNotFound, name)
	}

	return nil
}
