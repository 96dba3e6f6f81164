// Package motivation produces encouragement text for check-ins. A
// remote language-model provider supplies personalized messages when
// configured; a canned-quote fallback covers every failure mode, so
// callers always get a usable message and never an error.
package motivation

import (
	"context"
	"errors"

	"github.com/julianstephens/habitflow/internal/logger"
)

// ErrUnavailable indicates the enrichment provider is unconfigured or
// failing. It never escapes the Motivator.
var ErrUnavailable = errors.New("motivation provider unavailable")

// Request describes who is being encouraged and for what.
type Request struct {
	UserName  string
	HabitName string
	Streak    int
}

// Provider generates a motivational message for a request.
type Provider interface {
	Message(ctx context.Context, req Request) (string, error)
}

// Motivator tries the remote provider first and silently falls back to
// canned quotes. Message never returns an error; enrichment failures
// are absorbed here and only logged.
type Motivator struct {
	remote   Provider
	fallback *FallbackQuotes
}

// NewMotivator builds a Motivator. remote may be nil, in which case
// every message comes from the fallback quotes.
func NewMotivator(remote Provider) *Motivator {
	return &Motivator{
		remote:   remote,
		fallback: NewFallbackQuotes(),
	}
}

// Message returns a motivational message, preferring the remote
// provider when it is configured and responsive.
func (m *Motivator) Message(ctx context.Context, req Request) string {
	if m.remote != nil {
		msg, err := m.remote.Message(ctx, req)
		if err == nil && msg != "" {
			return msg
		}
		if err != nil && !errors.Is(err, ErrUnavailable) {
			logger.Warn("Enrichment failed, using canned quote", "error", err)
		}
	}

	msg, _ := m.fallback.Message(ctx, req)
	return msg
}
