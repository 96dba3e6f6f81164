package motivation

import (
	"context"
	"math/rand"
)

// quotes is the built-in selection of uplifting lines used whenever the
// remote provider is unavailable.
var quotes = []string{
	"Every journey begins with a single step.",
	"Success is the sum of small efforts, repeated day in and day out.",
	"Don't watch the clock; do what it does. Keep going.",
	"The secret of getting ahead is getting started.",
	"Keep pushing forward - your hard work will pay off.",
	"Discipline is choosing between what you want now and what you want most.",
	"Little by little, a little becomes a lot.",
}

// FallbackQuotes returns a random canned quote. It always succeeds.
type FallbackQuotes struct {
	pick func(n int) int
}

func NewFallbackQuotes() *FallbackQuotes {
	return &FallbackQuotes{pick: rand.Intn}
}

func (f *FallbackQuotes) Message(ctx context.Context, req Request) (string, error) {
	return quotes[f.pick(len(quotes))], nil
}
