package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

func TestStore_InitialState(t *testing.T) {
	s := NewStore()

	snap := s.Snapshot()
	assert.True(t, snap.Loading)
	assert.False(t, snap.Authenticated)
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.Identity)
	assert.Empty(t, s.Token())
}

func TestStore_NotifiesSynchronouslyInSubscriptionOrder(t *testing.T) {
	s := NewStore()

	var order []string
	s.Subscribe(func(Snapshot) { order = append(order, "first") })
	s.Subscribe(func(Snapshot) { order = append(order, "second") })
	s.Subscribe(func(Snapshot) { order = append(order, "third") })

	s.update(func(snap *Snapshot) { snap.Token = "T" })

	assert.Equal(t, []string{"first", "second", "third"}, order,
		"listeners run before update returns, in subscription order")
}

func TestStore_ListenersSeeTheMutatedSnapshot(t *testing.T) {
	s := NewStore()

	var seen Snapshot
	s.Subscribe(func(snap Snapshot) { seen = snap })

	user := &domain.User{ID: "u1", Role: domain.RoleUser}
	s.update(func(snap *Snapshot) {
		snap.Token = "T"
		snap.Identity = user
		snap.Authenticated = true
	})

	assert.Equal(t, "T", seen.Token)
	assert.Equal(t, user, seen.Identity)
	assert.True(t, seen.Authenticated)
	assert.Equal(t, "T", s.Token())
}

func TestStore_Unsubscribe(t *testing.T) {
	s := NewStore()

	var first, second int
	unsubscribe := s.Subscribe(func(Snapshot) { first++ })
	s.Subscribe(func(Snapshot) { second++ })

	s.update(func(snap *Snapshot) { snap.Token = "a" })
	unsubscribe()
	s.update(func(snap *Snapshot) { snap.Token = "b" })
	unsubscribe() // second call is a no-op

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestStore_ListenerMayReadTheStore(t *testing.T) {
	s := NewStore()

	var tokenDuringNotify string
	s.Subscribe(func(Snapshot) { tokenDuringNotify = s.Token() })

	s.update(func(snap *Snapshot) { snap.Token = "T" })

	assert.Equal(t, "T", tokenDuringNotify)
}
