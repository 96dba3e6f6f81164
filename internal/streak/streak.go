// Package streak computes consecutive-day completion streaks.
//
// The calculator is a pure function over a completion-history snapshot
// and an explicit reference date. It never reads the wall clock and
// never touches storage, which keeps every result deterministic and
// directly testable.
package streak

import (
	"time"

	"github.com/julianstephens/habitflow/internal/constants"
)

// Current returns the number of consecutive calendar days, counting
// backward from today inclusive, on which the habit was completed.
//
// completedDays must hold YYYY-MM-DD day strings sorted descending
// (most recent first), one entry per completed day. Entries after the
// reference date are ignored, so the streak can be evaluated as of any
// past day. The scan walks the remaining list front to back: entry i
// must equal today minus i days, and the walk stops at the first gap.
// Cost is O(k) in the streak length, not the history size.
//
// If the habit has no completion for today itself, the result is 0.
func Current(completedDays []string, today time.Time) int {
	ref := today.Format(constants.DateFormat)

	// Skip completions recorded after the reference date. Day strings
	// sort lexicographically in date order.
	start := 0
	for start < len(completedDays) && completedDays[start] > ref {
		start++
	}

	count := 0
	for i, day := range completedDays[start:] {
		expected := today.AddDate(0, 0, -i).Format(constants.DateFormat)
		if day != expected {
			break
		}
		count++
	}
	return count
}
