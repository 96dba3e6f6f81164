package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/habitflow/internal/logger"
)

// Sentinel errors for the check-in core. Storage implementations map
// driver-level failures onto these so callers can branch with errors.Is.
var (
	// ErrUserNotFound is returned when a referenced user does not exist
	ErrUserNotFound = errors.New("user not found")
	// ErrHabitNotFound is returned when a referenced habit does not exist
	ErrHabitNotFound = errors.New("habit not found")
	// ErrStorage wraps persistence-layer failures (I/O, corruption)
	ErrStorage = errors.New("storage error")
)

// IsNotFound reports whether err is one of the not-found kinds
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrHabitNotFound)
}

// Storagef wraps a driver error as an ErrStorage with context
func Storagef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrStorage, fmt.Sprintf(format, args...))
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
