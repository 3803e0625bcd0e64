package shopapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"buyfish/models"
)

// The auth service is external to the shop: the gateway forwards credentials
// verbatim and consumes the issued token as an opaque string.

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/login", req, "")
	if err != nil {
		return nil, err
	}
	return c.credentials(env)
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/register", req, "")
	if err != nil {
		return nil, err
	}
	return c.credentials(env)
}

// CheckAuth verifies a persisted token against the backend and returns the
// user it belongs to.
func (c *Client) CheckAuth(ctx context.Context, token string) (*models.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/auth/check-auth", nil, token)
	if err != nil {
		return nil, err
	}

	if len(env.User) > 0 {
		var user models.User
		if err := json.Unmarshal(env.User, &user); err != nil {
			return nil, fmt.Errorf("decode check-auth user: %w", err)
		}
		return &user, nil
	}

	var user models.User
	if err := c.decodeData(env, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, fmt.Errorf("check-auth response carried no user")
	}
	return &user, nil
}

func (c *Client) credentials(env *envelope) (*models.LoginResponse, error) {
	var creds models.LoginResponse
	if err := c.decodeData(env, &creds); err != nil {
		return nil, err
	}
	if creds.Token == "" {
		creds.Token = env.Token
		if len(env.User) > 0 {
			if err := json.Unmarshal(env.User, &creds.User); err != nil {
				return nil, fmt.Errorf("decode user: %w", err)
			}
		}
	}
	if creds.Token == "" || creds.User.ID == "" {
		return nil, fmt.Errorf("auth response missing token or user")
	}
	return &creds, nil
}
