package motivation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFallbackQuotesAlwaysReturns(t *testing.T) {
	f := NewFallbackQuotes()

	known := make(map[string]bool, len(quotes))
	for _, q := range quotes {
		known[q] = true
	}

	for i := 0; i < 50; i++ {
		msg, err := f.Message(context.Background(), Request{UserName: "alex"})
		if err != nil {
			t.Fatalf("fallback returned error: %v", err)
		}
		if !known[msg] {
			t.Fatalf("fallback returned unknown quote: %q", msg)
		}
	}
}

type failingProvider struct{ err error }

func (p *failingProvider) Message(ctx context.Context, req Request) (string, error) {
	return "", p.err
}

type fixedProvider struct{ msg string }

func (p *fixedProvider) Message(ctx context.Context, req Request) (string, error) {
	return p.msg, nil
}

func TestMotivatorPrefersRemote(t *testing.T) {
	m := NewMotivator(&fixedProvider{msg: "You've got this, Alex!"})

	got := m.Message(context.Background(), Request{UserName: "Alex", HabitName: "run", Streak: 3})
	if got != "You've got this, Alex!" {
		t.Errorf("expected remote message, got %q", got)
	}
}

func TestMotivatorFallsBackOnError(t *testing.T) {
	cases := []error{
		ErrUnavailable,
		fmt.Errorf("%w: no API key configured", ErrUnavailable),
		errors.New("connection reset"),
	}

	for _, provErr := range cases {
		m := NewMotivator(&failingProvider{err: provErr})
		got := m.Message(context.Background(), Request{UserName: "Alex"})
		if got == "" {
			t.Errorf("expected fallback message for provider error %v, got empty", provErr)
		}
	}
}

func TestMotivatorWithNilRemote(t *testing.T) {
	m := NewMotivator(nil)
	if got := m.Message(context.Background(), Request{}); got == "" {
		t.Error("expected fallback message with nil remote provider")
	}
}

func TestOpenAIProviderNoKey(t *testing.T) {
	p := NewOpenAIProvider("", "")

	_, err := p.Message(context.Background(), Request{UserName: "Alex"})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable without an API key, got %v", err)
	}
}

func TestOpenAIProviderSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"  Keep that 5-day streak alive!  "}}]}`)
	}))
	defer server.Close()

	p := NewOpenAIProvider("sk-test", "gpt-3.5-turbo")
	p.baseURL = server.URL

	msg, err := p.Message(context.Background(), Request{UserName: "Alex", HabitName: "run", Streak: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Keep that 5-day streak alive!" {
		t.Errorf("expected trimmed message, got %q", msg)
	}
}

func TestOpenAIProviderRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"Well done!"}}]}`)
	}))
	defer server.Close()

	p := NewOpenAIProvider("sk-test", "")
	p.baseURL = server.URL

	msg, err := p.Message(context.Background(), Request{})
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if msg != "Well done!" {
		t.Errorf("unexpected message: %q", msg)
	}
	if attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", attempts)
	}
}

func TestOpenAIProviderNoRetryOnClientError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"invalid api key","type":"auth_error"}}`)
	}))
	defer server.Close()

	p := NewOpenAIProvider("sk-bad", "")
	p.baseURL = server.URL

	_, err := p.Message(context.Background(), Request{})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected no retries on 401, got %d attempts", attempts)
	}
}
