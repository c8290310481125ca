// Package memstore provides the in-memory persistence behind the API stub.
// Everything lives in process memory and is lost on restart; the stub exists
// for development and end-to-end tests, not production.
package memstore

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

type userRecord struct {
	user domain.User
	hash string
}

// Users stores accounts keyed by ID with an email uniqueness index.
type Users struct {
	mu      sync.RWMutex
	byID    map[string]*userRecord
	byEmail map[string]string
}

func NewUsers() *Users {
	return &Users{
		byID:    make(map[string]*userRecord),
		byEmail: make(map[string]string),
	}
}

// Create inserts a new account. The email must be unused.
func (s *Users) Create(user domain.User, passwordHash string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, exists := s.byEmail[email]; exists {
		return nil, domain.ErrUserExists
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	s.byID[user.ID] = &userRecord{user: user, hash: passwordHash}
	s.byEmail[email] = user.ID

	clone := user
	return &clone, nil
}

// FindByEmail returns the account and its password hash.
func (s *Users) FindByEmail(email string) (*domain.User, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, "", domain.ErrUserNotFound
	}
	rec := s.byID[id]
	clone := rec.user
	return &clone, rec.hash, nil
}

// Get returns the account by ID.
func (s *Users) Get(id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := rec.user
	return &clone, nil
}

// Update applies non-empty profile fields and returns the full record.
func (s *Users) Update(id string, upd domain.ProfileUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Name != "" {
		rec.user.Name = upd.Name
	}
	if upd.Email != "" {
		oldEmail := strings.ToLower(rec.user.Email)
		newEmail := strings.ToLower(upd.Email)
		if newEmail != oldEmail {
			if _, taken := s.byEmail[newEmail]; taken {
				return nil, domain.ErrUserExists
			}
			delete(s.byEmail, oldEmail)
			s.byEmail[newEmail] = id
			rec.user.Email = upd.Email
		}
	}
	if upd.AvatarURL != "" {
		rec.user.AvatarURL = upd.AvatarURL
	}
	clone := rec.user
	return &clone, nil
}
