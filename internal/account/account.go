// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package account talks to the backend's register and login endpoints.
// The responses are opaque success/failure documents; no session state is
// kept here.
package account

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/herb-atlas/pkg/types"
)

const authPrefix = "/api/auth/"

// Client posts credentials to the auth endpoints.
type Client struct {
	http *http.Client
	cfg  types.AccountConfig
}

// NewClient builds an account client from config.
func NewClient(cfg types.AccountConfig) *Client {
	return &Client{
		http: &http.Client{Timeout: cfg.Timeout},
		cfg:  cfg,
	}
}

// Result is the backend's answer to an auth request. Failure is a valid
// result, not an error; errors are reserved for transport and parse
// problems.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, username, password string) (Result, error) {
	return c.post(ctx, "register", username, password)
}

// Login checks credentials.
func (c *Client) Login(ctx context.Context, username, password string) (Result, error) {
	return c.post(ctx, "login", username, password)
}

func (c *Client) post(ctx context.Context, path, username, password string) (Result, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return Result{}, fmt.Errorf("encoding credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+authPrefix+path, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("creating %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%s request: %w", path, err)
	}
	defer resp.Body.Close()

	// Failure responses carry the same JSON shape with a non-2xx status;
	// decode rather than reject them.
	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("parsing %s response (HTTP %d): %w", path, resp.StatusCode, err)
	}
	return result, nil
}
