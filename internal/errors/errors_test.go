package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("expected empty string for nil error, got %q", got)
	}

	err := errors.New("something broke")
	if got := Format(err); got != "Error: something broke" {
		t.Errorf("unexpected formatted error: %q", got)
	}
}

func TestIsNotFound(t *testing.T) {
	wrapped := fmt.Errorf("lookup failed: %w", ErrHabitNotFound)
	if !IsNotFound(wrapped) {
		t.Error("expected wrapped ErrHabitNotFound to be a not-found error")
	}

	if !IsNotFound(ErrUserNotFound) {
		t.Error("expected ErrUserNotFound to be a not-found error")
	}

	if IsNotFound(ErrStorage) {
		t.Error("ErrStorage should not be a not-found error")
	}
}

func TestStoragef(t *testing.T) {
	err := Storagef("open %s: disk full", "habits.db")
	if !errors.Is(err, ErrStorage) {
		t.Error("Storagef result should match ErrStorage")
	}
	if err.Error() != "storage error: open habits.db: disk full" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
