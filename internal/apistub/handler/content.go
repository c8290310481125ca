package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/platform-client/internal/apistub/memstore"
	"github.com/creatorhub/platform-client/internal/core/domain"
)

const contentPageSize = 10

type ContentHandler struct {
	contents *memstore.Contents
	users    *memstore.Users
}

func NewContentHandler(contents *memstore.Contents, users *memstore.Users) *ContentHandler {
	return &ContentHandler{contents: contents, users: users}
}

// List returns a page of published content.
func (h *ContentHandler) List(c echo.Context) error {
	filter := memstore.ListFilter{
		Type:   domain.ContentType(c.QueryParam("type")),
		UserID: c.QueryParam("user"),
		Search: c.QueryParam("search"),
	}
	items := h.contents.List(filter)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	total := len(items)
	totalPages := (total + contentPageSize - 1) / contentPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	start := (page - 1) * contentPageSize
	if start > total {
		start = total
	}
	end := start + contentPageSize
	if end > total {
		end = total
	}

	return okPage(c, http.StatusOK, items[start:end], domain.Pagination{
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	})
}

// Get returns a single item.
func (h *ContentHandler) Get(c echo.Context) error {
	item, err := h.contents.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, item)
}

// Create publishes a new item owned by the caller.
func (h *ContentHandler) Create(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}

	var in domain.ContentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return ok(c, http.StatusCreated, h.contents.Create(uid, in))
}

// Update replaces an item's editable fields.
func (h *ContentHandler) Update(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}

	var in domain.ContentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.contents.Update(c.Param("id"), uid, callerIsAdmin(c), in)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, item)
}

// Delete removes an item.
func (h *ContentHandler) Delete(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	if err := h.contents.Delete(c.Param("id"), uid, callerIsAdmin(c)); err != nil {
		return err
	}
	return ok(c, http.StatusOK, nil)
}

// Like toggles the caller's like on an item.
func (h *ContentHandler) Like(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	item, err := h.contents.ToggleLike(c.Param("id"), uid)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, item)
}

type commentRequest struct {
	Text string `json:"text" validate:"required"`
}

// Comment appends a comment to an item.
func (h *ContentHandler) Comment(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	name := ""
	if user, err := h.users.Get(uid); err == nil {
		name = user.Name
	}

	item, err := h.contents.AddComment(c.Param("id"), uid, name, req.Text)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, item)
}
