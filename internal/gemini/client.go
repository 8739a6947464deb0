// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the Gemini client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeAuth
	ErrTypeRateLimited
	ErrTypeTimeout
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrRateLimited = &ClientError{Type: ErrTypeRateLimited, Message: "API quota exceeded"}
	ErrNoAPIKey    = &ClientError{Type: ErrTypeAuth, Message: "API key not configured"}
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the Gemini client.
type ClientConfig struct {
	// BaseURL is the API base URL (default: https://generativelanguage.googleapis.com)
	BaseURL string

	// APIKey authenticates every request. Required.
	APIKey string

	// Model is the model to generate with (default: "gemini-pro")
	Model string

	// Timeout for HTTP requests (default: 60s). The caller typically races
	// Generate against a shorter deadline of its own, so this is a backstop.
	Timeout time.Duration

	// Generation holds the sampling parameters sent with every request.
	Generation GenerationConfig
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:    "https://generativelanguage.googleapis.com",
		Model:      "gemini-pro",
		Timeout:    60 * time.Second,
		Generation: DefaultGenerationConfig(),
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the Gemini generateContent API.
//
// The Client is thread-safe for concurrent use.
//
// Example:
//
//	cfg := gemini.DefaultConfig()
//	cfg.APIKey = key
//	client := gemini.NewClient(cfg)
//	resp, err := client.Generate(ctx, contents)
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new Gemini client. Zero-value config fields are filled
// with defaults; the API key is the caller's responsibility.
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	if config.BaseURL == "" {
		config.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if config.Model == "" {
		config.Model = "gemini-pro"
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	if config.Generation == (GenerationConfig{}) {
		config.Generation = DefaultGenerationConfig()
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.config.Model
}

// =============================================================================
// GENERATION
// =============================================================================

// Generate sends the given turns to the generateContent endpoint and returns
// the text of the first candidate.
func (c *Client) Generate(ctx context.Context, contents []Content) (string, error) {
	if c.config.APIKey == "" {
		return "", ErrNoAPIKey
	}

	reqBody := GenerateRequest{
		Contents:         contents,
		GenerationConfig: c.config.Generation,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	endpoint := c.config.BaseURL + "/v1beta/models/" + c.config.Model +
		":generateContent?key=" + url.QueryEscape(c.config.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", &ClientError{Type: ErrTypeConnection, Message: "network connection failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.statusError(resp)
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	text := result.Text()
	if text == "" {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "response contains no candidates"}
	}

	return text, nil
}

// statusError maps a non-200 response to a typed error, preferring the
// message from the API error envelope when one is present.
func (c *Client) statusError(resp *http.Response) error {
	message := "request failed: " + resp.Status
	var envelope apiError
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Message != "" {
		message = envelope.Error.Message
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &ClientError{Type: ErrTypeAuth, Message: message}
	case http.StatusBadRequest:
		// The API rejects bad keys with 400 rather than 401.
		if strings.Contains(strings.ToLower(message), "api key") {
			return &ClientError{Type: ErrTypeAuth, Message: message}
		}
		return &ClientError{Type: ErrTypeInvalidResponse, Message: message}
	case http.StatusTooManyRequests:
		return &ClientError{Type: ErrTypeRateLimited, Message: message}
	default:
		return &ClientError{Type: ErrTypeInvalidResponse, Message: message}
	}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsAuth checks if an error indicates an invalid or missing API key.
func IsAuth(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeAuth
	}
	return false
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeTimeout
	}
	return errors.Is(err, ErrTimeout)
}

// IsConnection checks if an error is a network connectivity error.
func IsConnection(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeConnection
	}
	return false
}

// IsRateLimited checks if an error is a quota error.
func IsRateLimited(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeRateLimited
	}
	return errors.Is(err, ErrRateLimited)
}
