package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/creatorhub/platform-client/internal/core/domain"
	"github.com/creatorhub/platform-client/internal/core/ports"
	"github.com/creatorhub/platform-client/internal/metrics"
	"github.com/creatorhub/platform-client/internal/token"
)

const (
	fallbackLogin    = "Login failed"
	fallbackRegister = "Registration failed"
	fallbackUpdate   = "Update failed"
)

// Manager owns all session transitions. It is the only writer of the
// session Store: bootstrap, register, login, logout and profile updates all
// flow through here.
type Manager struct {
	store    *Store
	api      ports.IdentityAPI
	tokens   ports.TokenStore
	validate *validator.Validate
	log      zerolog.Logger
	now      func() time.Time

	inFlight atomic.Bool
	loadDone sync.Once
}

// NewManager wires a Manager around a fresh Store. The caller connects the
// returned Store to the HTTP client wrapper as its token provider.
func NewManager(api ports.IdentityAPI, tokens ports.TokenStore, log zerolog.Logger) *Manager {
	return NewManagerWith(NewStore(), api, tokens, log)
}

// NewManagerWith wires a Manager around an existing Store. This lets callers
// hand the Store to the HTTP client as token provider before the API client
// exists, breaking the construction cycle between the two.
func NewManagerWith(store *Store, api ports.IdentityAPI, tokens ports.TokenStore, log zerolog.Logger) *Manager {
	return &Manager{
		store:    store,
		api:      api,
		tokens:   tokens,
		validate: validator.New(),
		log:      log,
		now:      time.Now,
	}
}

// Store returns the session store for subscribers and guards.
func (m *Manager) Store() *Store {
	return m.store
}

// Bootstrap restores the session from the persisted token. It runs once per
// process: a missing, malformed or expired token degrades silently to the
// logged-out state with no network call; a live token triggers an identity
// fetch. Loading becomes false as the last step on every path. Only token
// storage failures are returned.
func (m *Manager) Bootstrap(ctx context.Context) error {
	defer m.finishLoading()

	raw, err := m.tokens.Load(ctx)
	if errors.Is(err, domain.ErrNoToken) {
		metrics.SessionBootstraps.WithLabelValues("no_token").Inc()
		return nil
	}
	if err != nil {
		metrics.SessionBootstraps.WithLabelValues("storage_error").Inc()
		return fmt.Errorf("session: load token: %w", err)
	}

	if err := token.Check(raw, m.now()); err != nil {
		m.log.Debug().Err(err).Msg("persisted token unusable, clearing session")
		metrics.SessionBootstraps.WithLabelValues("stale_token").Inc()
		m.Logout()
		return nil
	}

	m.store.update(func(s *Snapshot) { s.Token = raw })
	m.loadIdentity(ctx)

	if m.store.Snapshot().Authenticated {
		metrics.SessionBootstraps.WithLabelValues("restored").Inc()
	} else {
		metrics.SessionBootstraps.WithLabelValues("rejected").Inc()
	}
	return nil
}

// finishLoading flips Loading to false exactly once per process lifetime.
func (m *Manager) finishLoading() {
	m.loadDone.Do(func() {
		m.store.update(func(s *Snapshot) { s.Loading = false })
	})
}

// loadIdentity fetches the authoritative user record using the currently
// attached token. Any failure is indistinguishable from having no session:
// full logout, no LastError.
func (m *Manager) loadIdentity(ctx context.Context) {
	user, err := m.api.Me(ctx)
	if err != nil {
		m.log.Debug().Err(err).Msg("identity fetch failed, clearing session")
		m.Logout()
		return
	}
	m.store.update(func(s *Snapshot) {
		s.Identity = user
		s.Authenticated = true
	})
}

// Register creates an account and enters the logged-in state on success.
// The issued token is returned; credential failures surface through
// LastError and the returned error while leaving session state unchanged.
func (m *Manager) Register(ctx context.Context, name, email, password string) (string, error) {
	if !m.inFlight.CompareAndSwap(false, true) {
		return "", domain.ErrAuthInFlight
	}
	defer m.inFlight.Store(false)

	in := struct {
		Name     string `validate:"required,min=2"`
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6"`
	}{name, email, password}
	if err := m.checkInput(in, fallbackRegister); err != nil {
		return "", err
	}

	tok, err := m.api.Register(ctx, name, email, password)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("register", "failure").Inc()
		m.store.update(func(s *Snapshot) { s.LastError = userMessage(err, fallbackRegister) })
		return "", err
	}
	metrics.AuthAttempts.WithLabelValues("register", "success").Inc()
	return tok, m.adoptToken(ctx, tok)
}

// Login exchanges credentials for a token and enters the logged-in state.
// Same contract shape as Register.
func (m *Manager) Login(ctx context.Context, email, password string) (string, error) {
	if !m.inFlight.CompareAndSwap(false, true) {
		return "", domain.ErrAuthInFlight
	}
	defer m.inFlight.Store(false)

	in := struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required"`
	}{email, password}
	if err := m.checkInput(in, fallbackLogin); err != nil {
		return "", err
	}

	tok, err := m.api.Login(ctx, email, password)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("login", "failure").Inc()
		m.store.update(func(s *Snapshot) { s.LastError = userMessage(err, fallbackLogin) })
		return "", err
	}
	metrics.AuthAttempts.WithLabelValues("login", "success").Inc()
	return tok, m.adoptToken(ctx, tok)
}

// adoptToken persists the freshly issued token, attaches it to the session
// and fetches the identity behind it. Persisting atomically supersedes any
// previous token.
func (m *Manager) adoptToken(ctx context.Context, tok string) error {
	if err := m.tokens.Save(ctx, tok); err != nil {
		return fmt.Errorf("session: persist token: %w", err)
	}
	m.store.update(func(s *Snapshot) {
		s.Token = tok
		s.LastError = ""
	})
	m.loadIdentity(ctx)
	return nil
}

// Logout clears the persisted token and resets the session. Synchronous,
// idempotent, no network call.
func (m *Manager) Logout() {
	if err := m.tokens.Clear(context.Background()); err != nil {
		m.log.Warn().Err(err).Msg("failed to clear persisted token")
	}
	m.store.update(func(s *Snapshot) {
		s.Token = ""
		s.Identity = nil
		s.Authenticated = false
	})
}

// UpdateProfile PUTs the given fields to the authenticated user's resource
// and replaces the local identity with the server's response. Requires a
// live session.
func (m *Manager) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error) {
	if !m.store.Snapshot().Authenticated {
		return nil, domain.ErrNotAuthenticated
	}
	if err := m.checkInput(update, fallbackUpdate); err != nil {
		return nil, err
	}

	user, err := m.api.UpdateProfile(ctx, update)
	if err != nil {
		m.store.update(func(s *Snapshot) { s.LastError = userMessage(err, fallbackUpdate) })
		return nil, err
	}
	m.store.update(func(s *Snapshot) {
		s.Identity = user
		s.LastError = ""
	})
	return user, nil
}

// DismissError clears LastError without touching the rest of the session.
func (m *Manager) DismissError() {
	m.store.update(func(s *Snapshot) { s.LastError = "" })
}

// checkInput runs pre-flight validation and mirrors failures into LastError
// so the UI shows them the same way as server rejections.
func (m *Manager) checkInput(in any, fallback string) error {
	err := m.validate.Struct(in)
	if err == nil {
		return nil
	}
	msg := fallback
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msg = fieldErrors(ve)
	}
	m.store.update(func(s *Snapshot) { s.LastError = msg })
	return &domain.APIError{Status: 400, Message: msg}
}

// userMessage extracts the server-provided message from an API failure,
// falling back to a generic one for transport-level errors.
func userMessage(err error, fallback string) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
