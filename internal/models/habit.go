package models

import (
	"fmt"
	"strings"
	"time"
)

// Habit is a tracked behavior belonging to one user. Names only need to
// be unique within their owner's habits.
type Habit struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	StartDate string     `json:"start_date"` // YYYY-MM-DD
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func (h *Habit) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if h.UserID == "" {
		return fmt.Errorf("habit must belong to a user")
	}
	if h.StartDate != "" {
		if _, err := time.Parse("2006-01-02", h.StartDate); err != nil {
			return fmt.Errorf("invalid start date (expected YYYY-MM-DD): %w", err)
		}
	}
	return nil
}
