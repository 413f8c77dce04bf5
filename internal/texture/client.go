// Package texture fetches the decorative forest background. The image never
// affects gameplay; the engine only stores it and tells the player how it went.
package texture

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/PixelFarm_Go/internal/logger"
)

// ErrNotConfigured is returned when no service URL was given
var ErrNotConfigured = errors.New(ErrMsgNotConfigured)

// Fetcher produces a texture as a data URI
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// Client requests images from an HTTP texture service. The service receives a
// JSON prompt and answers with raw image bytes.
type Client struct {
	BaseURL    string
	APIKey     string
	Client     *http.Client
	MaxRetries int
	RetryDelay time.Duration
}

// NewClient creates a client for the service at baseURL
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		Client:     &http.Client{Timeout: DefaultTimeout},
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

type imageRequest struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspect_ratio"`
}

// Fetch requests the forest image and encodes it as a data URI
func (c *Client) Fetch(ctx context.Context) (string, error) {
	if c.BaseURL == "" {
		return "", ErrNotConfigured
	}
	body, err := json.Marshal(imageRequest{Prompt: ForestPrompt, AspectRatio: "1:1"})
	if err != nil {
		return "", fmt.Errorf("failed to marshal texture request: %w", err)
	}

	log := logger.FromContext(ctx)
	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay * time.Duration(1<<uint(attempt-1))
			log.Info(LogMsgRetrying, "attempt", attempt, "delay", delay, "error", lastErr)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		uri, retry, err := c.fetchOnce(ctx, body)
		if err == nil {
			log.Debug(LogMsgFetched, "bytes", len(uri))
			return uri, nil
		}
		lastErr = err
		if !retry {
			break
		}
	}
	return "", lastErr
}

// fetchOnce performs one request. retry reports whether the failure looks transient.
func (c *Client) fetchOnce(ctx context.Context, body []byte) (uri string, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("failed to create texture request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "image/*")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", ctx.Err() == nil, fmt.Errorf("texture request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		transient := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		return "", transient, fmt.Errorf("%s %d", ErrMsgUnexpectedState, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", false, fmt.Errorf("%s %q", ErrMsgUnexpectedType, contentType)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return "", true, fmt.Errorf("failed to read texture: %w", err)
	}
	switch {
	case len(data) == 0:
		return "", false, errors.New(ErrMsgEmptyImage)
	case len(data) > MaxImageBytes:
		return "", false, errors.New(ErrMsgImageTooLarge)
	}
	return DataURI(contentType, data), false, nil
}

// DataURI encodes an image for direct use as a CSS background
func DataURI(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
