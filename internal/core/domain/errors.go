package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedToken is returned when the persisted token cannot be
	// decoded. The session layer treats it exactly like an expired token.
	ErrMalformedToken = errors.New("malformed session token")

	// ErrTokenExpired is returned when the token's exp claim is in the past.
	ErrTokenExpired = errors.New("session token expired")

	// ErrNoToken is returned by token stores when no token is persisted.
	ErrNoToken = errors.New("no session token")

	// ErrNotAuthenticated is returned by operations that require a live
	// session when none exists.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAuthInFlight rejects a login or register issued while another
	// auth exchange is still pending.
	ErrAuthInFlight = errors.New("authentication already in progress")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrContentNotFound    = errors.New("content not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidTransition  = errors.New("invalid report status transition")
)

// APIError is a failure response from the platform API. Message preserves
// the server-provided text so the UI can show it verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}
