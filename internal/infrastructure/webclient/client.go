// Package webclient issues single bounded HTTP GETs against external
// services. It classifies failures but never retries; fallback across
// candidate endpoints belongs to the caller.
package webclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const logBodyLimit = 512

// Failure classes for a single bounded GET.
var (
	ErrTimeout    = errors.New("request timed out")
	ErrConnection = errors.New("connection failed")
	ErrParse      = errors.New("response parse failed")
)

// StatusError is returned for any non-2xx response. Body is carried in full;
// truncation applies to logging only.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

func New(logger *zap.Logger) *Client {
	return &Client{
		// Per-call deadlines come from the context; the transport-level
		// timeout is a safety net only.
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		logger:     logger,
	}
}

// GetJSON performs a single GET with a hard wall-clock deadline and decodes
// the JSON body into out. On deadline expiry the in-flight request is
// cancelled and ErrTimeout is returned.
func (c *Client) GetJSON(ctx context.Context, url string, timeout time.Duration, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			c.logger.Warn("Request timed out",
				zap.String("url", url),
				zap.Duration("elapsed", time.Since(start)),
				zap.Duration("timeout", timeout))
			return fmt.Errorf("%w after %s: %s", ErrTimeout, timeout, url)
		}
		c.logger.Warn("Request failed",
			zap.String("url", url),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("Unexpected status",
			zap.String("url", url),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", truncate(string(body), logBodyLimit)))
		return &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("Failed to decode response",
			zap.String("url", url),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrParse, err)
	}

	c.logger.Debug("External call succeeded",
		zap.String("url", url),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
