package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func makeToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "u1",
		"role": "user",
		"exp":  time.Now().Add(ttl).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func invokeAuth(t *testing.T, authHeader string) (int, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Auth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := h(c)
	if err == nil {
		return rec.Code, c
	}
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	return httpErr.Code, c
}

func TestAuth_ValidTokenInjectsClaims(t *testing.T) {
	code, c := invokeAuth(t, "Bearer "+makeToken(t, testSecret, time.Hour))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "u1", c.Get("user_id"))
	assert.Equal(t, "user", c.Get("role"))
}

func TestAuth_CaseInsensitiveScheme(t *testing.T) {
	code, _ := invokeAuth(t, "bearer "+makeToken(t, testSecret, time.Hour))
	assert.Equal(t, http.StatusOK, code)
}

func TestAuth_MissingHeader(t *testing.T) {
	code, _ := invokeAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAuth_WrongScheme(t *testing.T) {
	code, _ := invokeAuth(t, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAuth_WrongSecret(t *testing.T) {
	code, _ := invokeAuth(t, "Bearer "+makeToken(t, "other-secret", time.Hour))
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	code, _ := invokeAuth(t, "Bearer "+makeToken(t, testSecret, -time.Hour))
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAuth_GarbageToken(t *testing.T) {
	code, _ := invokeAuth(t, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, code)
}
