package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
)

// Client is the typed HTTP client for the remote shop backend. The backend
// owns all persistent state; every response carries a success boolean and a
// message string on failure.
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		validate:   validator.New(),
	}
}

// APIError is a backend-reported logical failure (success:false). Transport
// failures come back as plain errors from the http client.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "shop API reported failure"
	}
	return e.Message
}

// envelope is the backend's response wrapper. ApprovalURL, Token and User show
// up top-level on the order-create and payment-capture responses.
type envelope struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	Data        json.RawMessage `json:"data"`
	ApprovalURL string          `json:"approvalURL"`
	Token       string          `json:"token"`
	User        json.RawMessage `json:"user"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, token string) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("shop API returned status %d with undecodable body: %w", res.StatusCode, err)
	}

	if !env.Success {
		return &env, &APIError{Message: env.Message}
	}
	return &env, nil
}

func (c *Client) decodeData(env *envelope, out interface{}) error {
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

func pathEscape(segment string) string {
	return url.PathEscape(segment)
}
