// Package generator turns a schema snapshot and a natural-language request
// into candidate SQL: it builds the prompt, calls the hosted completion API
// and sanitizes the raw response.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config holds completion API options.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultConfig returns config with defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://api.groq.com",
		Model:   "llama-3.1-8b-instant",
		Timeout: 60 * time.Second,
	}
}

// Client wraps the hosted chat-completions API.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a client from a Config.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// APIError is a non-2xx answer from the completion API (auth, quota,
// bad request). It is fatal for the request; the caller does not retry.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("completion API returned status %d: %s", e.StatusCode, e.Body)
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
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

// Generate issues one request to the completion API with the prompt as a
// single system-role message and returns the assistant's reply, trimmed.
// One outbound call per invocation; no retry or backoff.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    c.cfg.Model,
		Messages: []chatMessage{{Role: "system", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/openai/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}
	return strings.TrimSpace(chat.Choices[0].Message.Content), nil
}
