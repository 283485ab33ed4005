package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fairai-labs/fairctl/internal/domain"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// normalizeEmail mirrors the backend's own normalization so the stored
// profile matches what the server keeps.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new account and stores the returned session.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*domain.Session, error) {
	body := signupRequest{
		Name:     strings.TrimSpace(name),
		Email:    normalizeEmail(email),
		Password: password,
	}

	var out AuthResponse
	if err := c.postJSON(ctx, "/api/auth/signup", body, &out); err != nil {
		return nil, err
	}
	return c.saveSession(&out)
}

// Login authenticates and stores the returned session.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	body := loginRequest{
		Email:    normalizeEmail(email),
		Password: password,
	}

	var out AuthResponse
	if err := c.postJSON(ctx, "/api/auth/login", body, &out); err != nil {
		return nil, err
	}
	return c.saveSession(&out)
}

func (c *Client) saveSession(resp *AuthResponse) (*domain.Session, error) {
	if resp.Status != StatusSuccess || resp.Token == "" {
		msg := resp.Message
		if msg == "" {
			msg = "authentication failed"
		}
		return nil, fmt.Errorf("%s", msg)
	}

	session := &domain.Session{
		Token:   resp.Token,
		SavedAt: time.Now().UTC(),
	}
	if resp.User != nil {
		session.User = *resp.User
	}

	if err := c.sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return session, nil
}

// Me fetches the current user profile. Requires a stored session.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var out MeResponse
	if err := c.getJSON(ctx, "/api/auth/me", true, &out); err != nil {
		return nil, err
	}
	if out.Status != StatusSuccess || out.User == nil {
		msg := out.Message
		if msg == "" {
			msg = "failed to fetch user"
		}
		return nil, fmt.Errorf("%s", msg)
	}
	return out.User, nil
}

// Verify checks the stored token against the backend. An invalid token
// surfaces as ErrUnauthorized with the session already cleared.
func (c *Client) Verify(ctx context.Context) (*VerifyResponse, error) {
	var out VerifyResponse
	if err := c.getJSON(ctx, "/api/auth/verify", true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout discards the stored session. The backend keeps no server-side
// session state, so this is purely local.
func (c *Client) Logout() error {
	return c.sessions.Clear()
}
