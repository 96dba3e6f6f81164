// Package session holds per-session interactive state. The currently
// selected habit travels with the session value instead of living in
// package-level mutable state, so two sessions can never observe each
// other's selection.
package session

// Session carries the signed-in user and their current habit selection
// through one interactive run.
type Session struct {
	UserID         string
	UserName       string
	CurrentHabitID string
}

func New(userID, userName string) *Session {
	return &Session{UserID: userID, UserName: userName}
}

// SelectHabit records the habit the user is working on.
func (s *Session) SelectHabit(habitID string) {
	s.CurrentHabitID = habitID
}

// ClearSelection drops the current habit, e.g. after it was deleted.
func (s *Session) ClearSelection() {
	s.CurrentHabitID = ""
}

// HasSelection reports whether a habit is currently selected.
func (s *Session) HasSelection() bool {
	return s.CurrentHabitID != ""
}
