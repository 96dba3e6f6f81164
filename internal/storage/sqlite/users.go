package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/julianstephens/habitflow/internal/errors"
	"github.com/julianstephens/habitflow/internal/models"
)

func (s *Store) GetUserByName(name string) (models.User, error) {
	row := s.db.QueryRow(`SELECT id, name, created_at FROM users WHERE name = ?`, name)

	var u models.User
	var createdAt string
	if err := row.Scan(&u.ID, &u.Name, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%w: %s", apperrors.ErrUserNotFound, name)
		}
		return models.User{}, err
	}

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	u.CreatedAt = t

	return u, nil
}

// EnsureUser returns the user with the given name, creating it first if
// it does not exist.
func (s *Store) EnsureUser(name string) (models.User, error) {
	user, err := s.GetUserByName(name)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return models.User{}, err
	}

	user = models.User{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.Exec(`INSERT INTO users (id, name, created_at) VALUES (?, ?, ?)`,
		user.ID, user.Name, user.CreatedAt.Format(time.RFC3339))
	if err != nil {
		// Unique-name race: another writer inserted first, use their row
		if existing, lookupErr := s.GetUserByName(name); lookupErr == nil {
			return existing, nil
		}
		return models.User{}, err
	}

	return user, nil
}
