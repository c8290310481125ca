package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

// callerID extracts the user ID injected by the Auth middleware. Its
// presence proves the middleware ran; fail fast with 401 otherwise.
func callerID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

func callerIsAdmin(c echo.Context) bool {
	role, _ := c.Get("role").(string)
	return role == domain.RoleAdmin
}
