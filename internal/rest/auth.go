package rest

import (
	"context"
	"net/http"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and returns the issued bearer token.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/register", nil, registerRequest{name, email, password}, nil)
	if err != nil {
		return "", err
	}
	return env.Token, nil
}

// Login authenticates and returns the issued bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{email, password}, nil)
	if err != nil {
		return "", err
	}
	return env.Token, nil
}

// Me fetches the identity record behind the attached token.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if _, err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
