package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/joestump/devguide/internal/config"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai"
	defaultOpenRouterModel   = "google/gemini-flash-1.5-exp"
	defaultSiteURL           = "http://localhost:8080"

	defaultOpenAIBaseURL = "https://api.openai.com"
	defaultOpenAIModel   = "gpt-4o-mini"
)

// chatCompleter speaks the OpenAI chat completions protocol, which
// OpenRouter implements under a different path.
type chatCompleter struct {
	name    string
	apiKey  string
	model   string
	url     string
	headers map[string]string
	client  *http.Client
}

func newOpenRouter(cfg *config.Config, client *http.Client) *chatCompleter {
	siteURL := cfg.LLM.SiteURL
	if siteURL == "" {
		siteURL = defaultSiteURL
	}
	return &chatCompleter{
		name:   "openrouter",
		apiKey: cfg.LLM.APIKey,
		model:  orDefault(cfg.LLM.Model, defaultOpenRouterModel),
		url:    orDefault(cfg.LLM.BaseURL, defaultOpenRouterBaseURL) + "/api/v1/chat/completions",
		headers: map[string]string{
			"HTTP-Referer": siteURL,
			"X-Title":      cfg.LLM.SiteName,
		},
		client: client,
	}
}

func newOpenAI(cfg *config.Config, client *http.Client) *chatCompleter {
	return &chatCompleter{
		name:   "openai",
		apiKey: cfg.LLM.APIKey,
		model:  orDefault(cfg.LLM.Model, defaultOpenAIModel),
		url:    orDefault(cfg.LLM.BaseURL, defaultOpenAIBaseURL) + "/v1/chat/completions",
		client: client,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *chatCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	var messages []chatMessage
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	for k, v := range c.headers {
		if v != "" {
			httpReq.Header.Set(k, v)
		}
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", c.name, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apiError(resp.StatusCode, respBody)
	}

	var apiResp chatResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(apiResp.Choices) == 0 || apiResp.Choices[0].Message.Content == "" {
		return "", ErrEmptyContent
	}
	return apiResp.Choices[0].Message.Content, nil
}

// apiError extracts a message from either {"message": ...} or
// {"error": {"message": ...}} bodies.
func apiError(status int, body []byte) *APIError {
	var parsed struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.Unmarshal(body, &parsed)
	msg := parsed.Message
	if msg == "" {
		msg = parsed.Error.Message
	}
	return &APIError{Status: status, Message: msg}
}
