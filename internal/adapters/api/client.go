// Package api is the HTTP client for the FairAI evaluation backend. It owns
// the one place where the bearer token is attached to requests and where a
// 401 tears the stored session down.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fairai-labs/fairctl/internal/infrastructure/config"
	"github.com/fairai-labs/fairctl/internal/ports"
)

// ErrUnauthorized is returned whenever the backend answers 401. The stored
// session has already been cleared when callers see it.
var ErrUnauthorized = errors.New("session is missing or expired; run 'fairctl login'")

// ServerError is a non-2xx response whose body carried a backend error
// envelope.
type ServerError struct {
	StatusCode int
	Message    string
	Traceback  string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server error (HTTP %d)", e.StatusCode)
}

// Client talks to the FairAI backend.
type Client struct {
	baseURL  string
	httpc    *http.Client
	evalc    *http.Client
	sessions ports.SessionStore
	logger   *slog.Logger
}

// NewClient creates a backend client. Auth calls use the short HTTP timeout;
// evaluation uploads get the generous evaluate timeout.
func NewClient(cfg *config.Config, sessions ports.SessionStore, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.APIBaseURL, "/"),
		httpc:    &http.Client{Timeout: cfg.HTTPTimeout},
		evalc:    &http.Client{Timeout: cfg.EvaluateTimeout},
		sessions: sessions,
		logger:   logger,
	}
}

// do sends the request, attaching the stored bearer token when authed is
// set. A 401 response clears the session and comes back as ErrUnauthorized,
// so every authenticated call shares the same re-login behavior.
func (c *Client) do(hc *http.Client, req *http.Request, authed bool) (*http.Response, error) {
	if authed {
		session, err := c.sessions.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		if session == nil || session.Token == "" {
			return nil, ErrUnauthorized
		}
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	c.logger.Debug("sending request", "method", req.Method, "url", req.URL.String())

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}

	if authed && resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		if err := c.sessions.Clear(); err != nil {
			c.logger.Warn("failed to clear session after 401", "error", err)
		}
		return nil, ErrUnauthorized
	}

	return resp, nil
}

// postJSON sends a JSON body and decodes the response into out. Non-2xx
// responses with a backend error envelope become a *ServerError.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(c.httpc, req, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

// getJSON sends an authenticated GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, authed bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.do(c.httpc, req, authed)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var envelope struct {
			Message   string `json:"message"`
			Traceback string `json:"traceback"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil || envelope.Message == "" {
			return &ServerError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return &ServerError{StatusCode: resp.StatusCode, Message: envelope.Message, Traceback: envelope.Traceback}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Health probes the backend health endpoint. No authentication required.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.getJSON(ctx, "/health", false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
