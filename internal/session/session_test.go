package session

import "testing"

func TestSelection(t *testing.T) {
	s := New("user-1", "alex")

	if s.HasSelection() {
		t.Error("new session should have no habit selected")
	}

	s.SelectHabit("habit-1")
	if !s.HasSelection() {
		t.Error("expected selection after SelectHabit")
	}
	if s.CurrentHabitID != "habit-1" {
		t.Errorf("expected habit-1 selected, got %q", s.CurrentHabitID)
	}

	s.ClearSelection()
	if s.HasSelection() {
		t.Error("expected no selection after ClearSelection")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	a := New("user-1", "alex")
	b := New("user-2", "sam")

	a.SelectHabit("habit-1")
	if b.HasSelection() {
		t.Error("selection leaked between sessions")
	}
}
