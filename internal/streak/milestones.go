package streak

import "fmt"

// milestones are streak lengths that earn a celebration.
var milestones = map[int]bool{3: true, 7: true, 10: true}

// Milestone returns a celebratory message when the streak hits a
// milestone length, and an empty string otherwise. Display-only; it has
// no effect on streak arithmetic.
func Milestone(streak int) string {
	if milestones[streak] {
		return fmt.Sprintf("🎉 You've hit a %d-day streak! Amazing discipline!", streak)
	}
	return ""
}
