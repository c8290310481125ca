package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

func feedValues(q domain.FeedQuery) url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if len(q.Sources) > 0 {
		names := make([]string, len(q.Sources))
		for i, s := range q.Sources {
			names[i] = string(s)
		}
		v.Set("sources", strings.Join(names, ","))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// Feed fetches a page of the aggregated social feed.
func (c *Client) Feed(ctx context.Context, q domain.FeedQuery) ([]domain.FeedItem, *domain.Pagination, error) {
	var items []domain.FeedItem
	env, err := c.do(ctx, http.MethodGet, "/feed", feedValues(q), nil, &items)
	if err != nil {
		return nil, nil, err
	}
	return items, env.Pagination, nil
}

// SaveFeedItem stores a feed item in the caller's collection and returns the
// saved record (its ID is needed to unsave later).
func (c *Client) SaveFeedItem(ctx context.Context, item domain.FeedItem) (*domain.SavedItem, error) {
	var saved domain.SavedItem
	if _, err := c.do(ctx, http.MethodPost, "/feed/save", nil, item, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// SavedItems lists the caller's saved collection.
func (c *Client) SavedItems(ctx context.Context) ([]domain.SavedItem, error) {
	var items []domain.SavedItem
	if _, err := c.do(ctx, http.MethodGet, "/feed/saved", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteSavedItem removes a saved record by its saved-record ID.
func (c *Client) DeleteSavedItem(ctx context.Context, savedID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/feed/saved/"+savedID, nil, nil, nil)
	return err
}
