package rest

import (
	"context"
	"net/http"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if _, err := c.do(ctx, http.MethodGet, "/users/profile", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile PUTs the changed fields and returns the server's full
// updated record.
func (c *Client) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error) {
	var user domain.User
	if _, err := c.do(ctx, http.MethodPut, "/users/profile", nil, update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
