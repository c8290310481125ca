package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorhub/platform-client/internal/apistub/memstore"
	"github.com/creatorhub/platform-client/internal/core/domain"
)

func newTestService() *AuthService {
	return NewAuthService(memstore.NewUsers(), "test-secret", time.Hour)
}

func TestAuthService_RegisterIssuesVerifiableToken(t *testing.T) {
	svc := newTestService()

	token, user, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID, claims["sub"])
	assert.Equal(t, domain.RoleUser, claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Register("Other", "ALICE@example.com", "password456")
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestAuthService_RegisterRejectsBlankFields(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Register("", "alice@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Register("Alice", "alice@example.com", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginRoundTrip(t *testing.T) {
	svc := newTestService()
	_, created, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	token, user, err := svc.Login("alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc := newTestService()
	_, _, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	svc := newTestService()
	_, _, err := svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuthService_Me(t *testing.T) {
	svc := newTestService()
	_, created, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	user, err := svc.Me(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, user)

	_, err = svc.Me("missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuthService_SeedKeepsExplicitRole(t *testing.T) {
	svc := newTestService()

	admin, err := svc.Seed("Admin", "admin@example.com", "admin123", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	_, user, err := svc.Login("admin@example.com", "admin123")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}
