package session

import (
	"sync"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

// Snapshot is an immutable view of the session at one point in time.
// Invariant: Authenticated implies Token != "" and Identity != nil.
type Snapshot struct {
	Token         string
	Identity      *domain.User
	Authenticated bool
	// Loading is true only during the initial bootstrap check. It never
	// re-enters true afterwards, even when later fetches fail.
	Loading bool
	// LastError holds the last user-facing failure from register, login or
	// profile update. Cleared on the next attempt or via DismissError.
	LastError string
}

// Listener receives session snapshots. Listeners are invoked synchronously,
// in subscription order, before the mutating call returns.
type Listener func(Snapshot)

type subscriber struct {
	id int
	fn Listener
}

// Store owns the current Snapshot and fans out every mutation to its
// subscribers. The lifecycle Manager is its only writer.
type Store struct {
	mu     sync.RWMutex
	snap   Snapshot
	subs   []subscriber
	nextID int
}

// NewStore returns a Store in the pre-bootstrap state: empty and loading.
func NewStore() *Store {
	return &Store{snap: Snapshot{Loading: true}}
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Token returns the current token, implementing ports.TokenProvider for the
// HTTP client wrapper.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Token
}

// Subscribe registers fn and returns an unsubscribe function. fn is not
// called with the current state; callers read Snapshot() for that.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// update applies mutate under the write lock, then notifies every subscriber
// with the resulting snapshot before returning. Notification happens outside
// the lock so listeners may read the store.
func (s *Store) update(mutate func(*Snapshot)) {
	s.mu.Lock()
	mutate(&s.snap)
	snap := s.snap
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snap)
	}
}
