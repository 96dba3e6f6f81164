package models

import (
	"fmt"
	"time"
)

// CheckIn is a single dated record of whether a habit was completed.
// At most one record per (habit, day) is kept; re-recording the same day
// replaces the earlier value (last write wins). Records are never
// mutated through any other path.
type CheckIn struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Day       string    `json:"day"` // YYYY-MM-DD
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *CheckIn) Validate() error {
	if c.HabitID == "" {
		return fmt.Errorf("check-in must reference a habit")
	}
	if _, err := time.Parse("2006-01-02", c.Day); err != nil {
		return fmt.Errorf("invalid check-in day (expected YYYY-MM-DD): %w", err)
	}
	return nil
}
