package api

import (
	"context"
	"net/http"

	"go-jobtrack/internal/models"
)

// Login exchanges credentials for a bearer token. It does not touch any
// stored session; that is the session store's job.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	req := models.LoginRequest{Email: email, Password: password}
	var out models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account. Registration does not establish a session;
// the user logs in afterwards.
func (c *Client) Register(ctx context.Context, email, fullName, password string) (*models.User, error) {
	req := models.RegisterRequest{Email: email, FullName: fullName, Password: password}
	var out models.User
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser fetches the profile for the bearer token on the request.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
