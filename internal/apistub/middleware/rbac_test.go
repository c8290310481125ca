package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeRBAC(t *testing.T, role any, allowed ...string) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}

	h := RBAC(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := h(c)
	if err == nil {
		return rec.Code
	}
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	return httpErr.Code
}

func TestRBAC_AllowsListedRole(t *testing.T) {
	assert.Equal(t, http.StatusOK, invokeRBAC(t, "admin", "admin"))
	assert.Equal(t, http.StatusOK, invokeRBAC(t, "user", "admin", "user"))
}

func TestRBAC_RejectsUnlistedRole(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, invokeRBAC(t, "user", "admin"))
}

func TestRBAC_RejectsMissingRole(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, invokeRBAC(t, nil, "admin"))
}

func TestRBAC_RejectsNonStringRole(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, invokeRBAC(t, 42, "admin"))
}
