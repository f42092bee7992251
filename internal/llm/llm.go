// Package llm sends rendered prompts to a chat completion provider. The
// feature is optional: with no provider configured New returns nil.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/joestump/devguide/internal/config"
	"github.com/joestump/devguide/internal/metrics"
)

var (
	// ErrNotConfigured is returned when no API key is available.
	ErrNotConfigured = errors.New("AI service API key is not configured")

	// ErrEmptyContent is returned when the provider answers without text.
	ErrEmptyContent = errors.New("no content received from AI service")
)

// CompletionRequest is a single prompt with an optional system prompt.
type CompletionRequest struct {
	System string
	Prompt string
}

// Completer returns the assistant's reply to a prompt.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// APIError is a non-2xx answer from the provider.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

const (
	temperature = 0.7
	maxTokens   = 2000
)

// New creates a Completer from config. It returns nil when no provider is
// set, meaning AI completion is disabled.
func New(cfg *config.Config) (Completer, error) {
	client := &http.Client{Timeout: cfg.LLM.Timeout}
	switch cfg.LLM.Provider {
	case "":
		return nil, nil
	case "openrouter":
		return newOpenRouter(cfg, client), nil
	case "openai", "openai-compatible":
		return newOpenAI(cfg, client), nil
	case "anthropic":
		return newAnthropic(cfg, client), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.LLM.Provider)
	}
}

// Instrument wraps c so every call is counted and timed.
func Instrument(c Completer) Completer {
	return instrumented{next: c}
}

type instrumented struct {
	next Completer
}

func (i instrumented) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	start := time.Now()
	out, err := i.next.Complete(ctx, req)
	metrics.CompletionDuration.Observe(time.Since(start).Seconds())

	status := "ok"
	switch {
	case errors.Is(err, ErrNotConfigured):
		status = "not_configured"
	case err != nil:
		status = "error"
	}
	metrics.CompletionsTotal.WithLabelValues(status).Inc()
	return out, err
}
