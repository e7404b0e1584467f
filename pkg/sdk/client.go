package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client wraps calls to the relay backend
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// CreateSession mints a new conversation session
func (c *Client) CreateSession(ctx context.Context) (*Session, error) {
	path := "/api/chat/sessions"

	var out ApiResponse[Session]
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}

	if out.Data.SessionID == "" {
		return nil, fmt.Errorf("no session id returned")
	}

	return &out.Data, nil
}

// SendMessage posts a question to a session and returns the completion
func (c *Client) SendMessage(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	path := "/api/chat/completions"

	var out ApiResponse[CompletionResponse]
	if err := c.doJSON(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}

	// Check for success
	switch out.Status {
	case StatusFail:
		return nil, fmt.Errorf("failed to send message: %s", out.Message)
	case StatusError:
		return nil, fmt.Errorf("error sending message (%s): %v", out.Message, out.Error)
	}

	return &out.Data, nil
}

// ListSessions enumerates stored session summaries
func (c *Client) ListSessions(ctx context.Context) ([]Session, error) {
	path := "/api/chat/sessions"

	var out ApiResponse[[]Session]
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return out.Data, nil
}

// GetSession retrieves a session transcript by id
func (c *Client) GetSession(ctx context.Context, sessionID string) (*SessionTranscript, error) {
	path := fmt.Sprintf("/api/chat/sessions/%s", url.PathEscape(sessionID))

	var out ApiResponse[SessionTranscript]
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return &out.Data, nil
}

// DeleteSession evicts a session by id
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	path := fmt.Sprintf("/api/chat/sessions/%s", url.PathEscape(sessionID))

	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// CreateUser creates a new user
func (c *Client) CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error) {
	path := "/api/users"

	var out ApiResponse[User]
	if err := c.doJSON(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}

	return &out.Data, nil
}

// GetUser retrieves a user by external id
func (c *Client) GetUser(ctx context.Context, userID int64) (*User, error) {
	path := fmt.Sprintf("/api/users/%d", userID)

	var out ApiResponse[User]
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return &out.Data, nil
}

// DeleteUser deletes a user by external id
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	path := fmt.Sprintf("/api/users/%d", userID)

	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// doJSON is a helper to perform JSON requests to the backend
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	// Create request body if input is provided
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	// Create the request
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	// Perform the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// On error, read body and return error
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("[BACKEND]: backend '%s %s' failed: %d: %s", method, path, resp.StatusCode, string(b))
	}

	// If no output expected, return early
	if out == nil {
		return nil
	}

	// Decode the response body into the output struct
	dec := json.NewDecoder(resp.Body)
	return dec.Decode(out)
}
