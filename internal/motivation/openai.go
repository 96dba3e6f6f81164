package motivation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/julianstephens/habitflow/internal/constants"
)

const (
	openaiBaseURL      = "https://api.openai.com/v1/chat/completions"
	openaiTemperature  = 0.7
	openaiInitialDelay = 1 * time.Second

	systemPrompt = "You are a friendly and supportive assistant. Your job is to encourage " +
		"recent graduates who are forming healthy habits."
)

// OpenAIProvider generates motivational messages via the OpenAI chat
// completions API. It is best effort: any failure surfaces as
// ErrUnavailable so the caller can fall back.
type OpenAIProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = constants.DefaultOpenAIModel
	}
	return &OpenAIProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: openaiBaseURL,
		client:  &http.Client{Timeout: constants.EnrichmentTimeout},
	}
}

func (p *OpenAIProvider) Message(ctx context.Context, req Request) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("%w: no API key configured", ErrUnavailable)
	}

	userPrompt := fmt.Sprintf(
		"User %s is working on the habit of '%s'. They currently have a streak of %d days. "+
			"Provide a concise, upbeat motivational message to keep them going.",
		req.UserName, req.HabitName, req.Streak)

	body, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: openaiTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrUnavailable, err)
	}

	var lastErr error
	for attempt := 0; attempt < constants.EnrichmentMaxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(math.Pow(2, float64(attempt-1))) * openaiInitialDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
			}
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
		}
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := p.client.Do(httpReq)
		if err != nil {
			lastErr = err
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			var apiErr apiError
			if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
				lastErr = fmt.Errorf("API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
			} else {
				lastErr = fmt.Errorf("API error (%d)", resp.StatusCode)
			}

			// Retry rate limits and server errors only
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				continue
			}
			return "", fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
		}

		var chatResp chatResponse
		if err := json.Unmarshal(respBody, &chatResp); err != nil {
			return "", fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
		}
		if len(chatResp.Choices) == 0 {
			return "", fmt.Errorf("%w: empty response", ErrUnavailable)
		}

		return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
	}

	return "", fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}
