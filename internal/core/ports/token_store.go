package ports

import "context"

// TokenStore is the persistent slot holding the single session token.
// Load returns domain.ErrNoToken when the slot is empty. Save atomically
// supersedes any previously stored token.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// TokenProvider exposes the live session token to the HTTP client wrapper,
// which attaches it as a bearer header at call time. An empty string means
// no session: the Authorization header is omitted entirely.
type TokenProvider interface {
	Token() string
}
