// Package api implements the HTTP client for the SecureConnect server,
// covering the signup, login, and username-availability endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// APIError is a non-2xx response decoded from the server's message body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client talks to the server's JSON API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client for the given base URL (e.g., "http://localhost:5000").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the token and username returned on successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var msg messageResponse
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		return &APIError{StatusCode: resp.StatusCode, Message: msg.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// SignUp creates an account. A nil error means the account was created;
// the server issues no token on signup.
func (c *Client) SignUp(ctx context.Context, username, password string) error {
	return c.post(ctx, "/api/signup", credentialsRequest{Username: username, Password: password}, nil)
}

// Login exchanges credentials for a signed token.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.post(ctx, "/api/login", credentialsRequest{Username: username, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckUsername reports whether username is already taken on the server.
func (c *Client) CheckUsername(ctx context.Context, username string) (bool, error) {
	var out struct {
		Exists bool `json:"exists"`
	}
	if err := c.post(ctx, "/api/check-username", map[string]string{"username": username}, &out); err != nil {
		return false, err
	}
	return out.Exists, nil
}

// Ping checks server liveness.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/ping", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: "ping failed"}
	}
	return nil
}
