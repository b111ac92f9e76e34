package assemblyai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
)

const (
	providerName   = "assemblyai"
	defaultBaseURL = "https://api.assemblyai.com"
	userAgent      = "assemblyai-slack-bot/1.0"
)

// Config represents configuration for the AssemblyAI client
type Config struct {
	APIKey       string        `yaml:"api_key"`
	BaseURL      string        `yaml:"base_url"`
	PollInterval time.Duration `yaml:"poll_interval"`
	MaxRetries   int           `yaml:"max_retries"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
	Timeout      time.Duration `yaml:"timeout"`
}

// Client talks to the AssemblyAI REST API. It holds only credentials and an
// HTTP client, so one instance serves every concurrent run.
type Client struct {
	config Config
	client *http.Client
	logger *zap.Logger
}

// NewClient creates a new AssemblyAI client
func NewClient(config Config, logger *zap.Logger) *Client {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.PollInterval <= 0 {
		config.PollInterval = 3 * time.Second
	}
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.RetryBackoff <= 0 {
		config.RetryBackoff = 500 * time.Millisecond
	}
	if config.Timeout <= 0 {
		config.Timeout = 2 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger.Named(providerName),
	}
}

var (
	_ provider.Transcriber = (*Client)(nil)
	_ provider.LLM         = (*Client)(nil)
)

// doJSON sends body as JSON and decodes the response into out. Retryable
// failures are retried up to MaxRetries times with doubling backoff.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return &provider.TranscriptionError{
				Code:     "request_encode_error",
				Message:  fmt.Sprintf("failed to encode request: %v", err),
				Provider: providerName,
			}
		}
	}

	backoff := c.config.RetryBackoff
	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Warn("retrying request",
				zap.String("path", path),
				zap.Int("attempt", attempt),
				zap.Error(lastErr))
			if err := sleep(ctx, backoff); err != nil {
				return err
			}
			backoff *= 2
			if backoff > 10*time.Second {
				backoff = 10 * time.Second
			}
		}

		var reader io.Reader
		contentType := ""
		if payload != nil {
			reader = bytes.NewReader(payload)
			contentType = "application/json"
		}
		lastErr = c.do(ctx, method, path, reader, contentType, out)
		if lastErr == nil || !provider.IsRetryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, body)
	if err != nil {
		return &provider.TranscriptionError{
			Code:     "request_creation_error",
			Message:  fmt.Sprintf("failed to create HTTP request: %v", err),
			Provider: providerName,
		}
	}
	req.Header.Set("Authorization", c.config.APIKey)
	req.Header.Set("User-Agent", userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &provider.TranscriptionError{
			Code:      "network_error",
			Message:   fmt.Sprintf("failed to call AssemblyAI API: %v", err),
			Provider:  providerName,
			Retryable: true,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return handleHTTPError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &provider.TranscriptionError{
			Code:     "response_parse_error",
			Message:  fmt.Sprintf("failed to parse API response: %v", err),
			Provider: providerName,
		}
	}
	return nil
}

// handleHTTPError handles HTTP error responses
func handleHTTPError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	message := apiErrorMessage(body)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &provider.TranscriptionError{
			Code:        "authentication_failed",
			Message:     "AssemblyAI API key is invalid or missing",
			Provider:    providerName,
			StatusCode:  resp.StatusCode,
			Suggestions: []string{"Check your ASSEMBLYAI_API_KEY environment variable"},
		}
	case http.StatusTooManyRequests:
		return &provider.TranscriptionError{
			Code:        "rate_limit_exceeded",
			Message:     "AssemblyAI API rate limit exceeded",
			Provider:    providerName,
			StatusCode:  resp.StatusCode,
			Retryable:   true,
			Suggestions: []string{"Wait a moment and try again"},
		}
	case http.StatusBadRequest, http.StatusNotFound:
		return &provider.TranscriptionError{
			Code:       "invalid_request",
			Message:    fmt.Sprintf("Invalid request: %s", message),
			Provider:   providerName,
			StatusCode: resp.StatusCode,
		}
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return &provider.TranscriptionError{
			Code:       "server_error",
			Message:    "AssemblyAI server error",
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Retryable:  true,
		}
	default:
		return &provider.TranscriptionError{
			Code:       "unknown_error",
			Message:    fmt.Sprintf("Unexpected HTTP status %d: %s", resp.StatusCode, message),
			Provider:   providerName,
			StatusCode: resp.StatusCode,
		}
	}
}

// apiErrorMessage extracts {"error": "..."} from a body, or returns it raw.
func apiErrorMessage(body []byte) string {
	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
		return parsed.Error
	}
	return strings.TrimSpace(string(body))
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
