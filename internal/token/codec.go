// Package token decodes session tokens without verifying their signature.
//
// The client cannot verify a token it did not sign; the decoded payload is
// used only as a local expiry hint. Identity and role always come from the
// API, never from the token.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

// ExpiresAt extracts the exp claim (epoch seconds) from a raw JWT without
// signature verification. A token that cannot be decoded, or that carries
// no exp claim, fails with domain.ErrMalformedToken.
func ExpiresAt(raw string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrMalformedToken, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrMalformedToken, err)
	}
	if exp == nil {
		return time.Time{}, fmt.Errorf("%w: missing exp claim", domain.ErrMalformedToken)
	}
	return exp.Time, nil
}

// Check reports whether raw is usable at instant now. It returns
// domain.ErrMalformedToken or domain.ErrTokenExpired, or nil when the
// token is decodable and not yet expired.
func Check(raw string, now time.Time) error {
	exp, err := ExpiresAt(raw)
	if err != nil {
		return err
	}
	if !exp.After(now) {
		return domain.ErrTokenExpired
	}
	return nil
}
