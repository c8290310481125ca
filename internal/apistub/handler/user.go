package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/platform-client/internal/apistub/memstore"
	"github.com/creatorhub/platform-client/internal/core/domain"
)

type UserHandler struct {
	users *memstore.Users
}

func NewUserHandler(users *memstore.Users) *UserHandler {
	return &UserHandler{users: users}
}

// Profile returns the caller's own record.
func (h *UserHandler) Profile(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	user, err := h.users.Get(uid)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, user)
}

// UpdateProfile applies the changed fields and returns the full record.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}

	var upd domain.ProfileUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Update(uid, upd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, user)
}
