package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func TestExpiresAt_ValidToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signed(t, jwt.MapClaims{"sub": "u1", "exp": exp.Unix()})

	got, err := ExpiresAt(raw)
	if err != nil {
		t.Fatalf("ExpiresAt returned error: %v", err)
	}
	if !got.Equal(exp) {
		t.Fatalf("expected %v, got %v", exp, got)
	}
}

func TestExpiresAt_Malformed(t *testing.T) {
	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := ExpiresAt(raw); !errors.Is(err, domain.ErrMalformedToken) {
			t.Fatalf("token %q: expected ErrMalformedToken, got %v", raw, err)
		}
	}
}

func TestExpiresAt_MissingExp(t *testing.T) {
	raw := signed(t, jwt.MapClaims{"sub": "u1"})
	if _, err := ExpiresAt(raw); !errors.Is(err, domain.ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken for missing exp, got %v", err)
	}
}

func TestCheck(t *testing.T) {
	now := time.Now()

	live := signed(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
	if err := Check(live, now); err != nil {
		t.Fatalf("live token rejected: %v", err)
	}

	expired := signed(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()})
	if err := Check(expired, now); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}

	if err := Check("garbage", now); !errors.Is(err, domain.ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
}
