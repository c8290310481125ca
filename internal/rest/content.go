package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

// ContentQuery filters content listings.
type ContentQuery struct {
	Page   int
	Type   domain.ContentType
	UserID string
	Search string
}

func (q ContentQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Type != "" {
		v.Set("type", string(q.Type))
	}
	if q.UserID != "" {
		v.Set("user", q.UserID)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// Contents lists published content.
func (c *Client) Contents(ctx context.Context, q ContentQuery) ([]domain.Content, *domain.Pagination, error) {
	var items []domain.Content
	env, err := c.do(ctx, http.MethodGet, "/content", q.values(), nil, &items)
	if err != nil {
		return nil, nil, err
	}
	return items, env.Pagination, nil
}

// Content fetches a single item by ID.
func (c *Client) Content(ctx context.Context, id string) (*domain.Content, error) {
	var item domain.Content
	if _, err := c.do(ctx, http.MethodGet, "/content/"+id, nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateContent publishes a new item.
func (c *Client) CreateContent(ctx context.Context, in domain.ContentInput) (*domain.Content, error) {
	var item domain.Content
	if _, err := c.do(ctx, http.MethodPost, "/content", nil, in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateContent replaces an item's editable fields.
func (c *Client) UpdateContent(ctx context.Context, id string, in domain.ContentInput) (*domain.Content, error) {
	var item domain.Content
	if _, err := c.do(ctx, http.MethodPut, "/content/"+id, nil, in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteContent removes an item owned by the caller.
func (c *Client) DeleteContent(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/content/"+id, nil, nil, nil)
	return err
}

// LikeContent toggles the caller's like on an item and returns the updated
// record.
func (c *Client) LikeContent(ctx context.Context, id string) (*domain.Content, error) {
	var item domain.Content
	if _, err := c.do(ctx, http.MethodPut, "/content/"+id+"/like", nil, struct{}{}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

type commentRequest struct {
	Text string `json:"text"`
}

// CommentOnContent appends a comment and returns the updated record.
func (c *Client) CommentOnContent(ctx context.Context, id, text string) (*domain.Content, error) {
	var item domain.Content
	if _, err := c.do(ctx, http.MethodPost, "/content/"+id+"/comments", nil, commentRequest{Text: text}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
