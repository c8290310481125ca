package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/platform-client/internal/apistub/memstore"
	"github.com/creatorhub/platform-client/internal/core/domain"
)

type FeedHandler struct {
	feed *memstore.Feed
}

func NewFeedHandler(feed *memstore.Feed) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// List returns one page of the aggregated feed.
func (h *FeedHandler) List(c echo.Context) error {
	q := domain.FeedQuery{Search: c.QueryParam("search")}
	q.Page, _ = strconv.Atoi(c.QueryParam("page"))

	if raw := c.QueryParam("sources"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				q.Sources = append(q.Sources, domain.FeedSource(name))
			}
		}
	}

	items, page := h.feed.List(q)
	return okPage(c, http.StatusOK, items, page)
}

// Save stores a feed item in the caller's collection.
func (h *FeedHandler) Save(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}

	var item domain.FeedItem
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if item.ContentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "contentId is required")
	}

	return ok(c, http.StatusCreated, h.feed.Save(uid, item))
}

// Saved lists the caller's saved collection.
func (h *FeedHandler) Saved(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, h.feed.Saved(uid))
}

// DeleteSaved removes one saved record by its saved-record ID.
func (h *FeedHandler) DeleteSaved(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	if err := h.feed.DeleteSaved(c.Param("id"), uid); err != nil {
		return err
	}
	return ok(c, http.StatusOK, nil)
}
