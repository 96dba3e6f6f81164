package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitflow/internal/constants"
)

// UserName checks that a user name is non-empty after trimming
func UserName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("user name cannot be empty")
	}
	return nil
}

// HabitName checks that a habit name is usable for display and lookup
func HabitName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if len(trimmed) > 200 {
		return fmt.Errorf("habit name too long (max 200 characters)")
	}
	return nil
}

// Day checks a YYYY-MM-DD calendar day string
func Day(day string) error {
	if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", day)
	}
	return nil
}

// ClockTime checks an HH:MM reminder time string
func ClockTime(tod string) error {
	if _, err := time.Parse(constants.TimeFormat, tod); err != nil {
		return fmt.Errorf("invalid time %q (expected HH:MM)", tod)
	}
	return nil
}
