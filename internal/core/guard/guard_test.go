package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creatorhub/platform-client/internal/core/domain"
	"github.com/creatorhub/platform-client/internal/core/session"
)

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name string
		snap session.Snapshot
		want Verdict
	}{
		{
			name: "pending while bootstrapping",
			snap: session.Snapshot{Loading: true},
			want: Verdict{Decision: Pending},
		},
		{
			name: "pending even when a stale token looks present",
			snap: session.Snapshot{Loading: true, Token: "T"},
			want: Verdict{Decision: Pending},
		},
		{
			name: "redirects anonymous sessions to login",
			snap: session.Snapshot{},
			want: Verdict{Decision: Redirect, Target: RouteLogin},
		},
		{
			name: "allows authenticated sessions",
			snap: session.Snapshot{
				Token:         "T",
				Identity:      &domain.User{ID: "u1", Role: domain.RoleUser},
				Authenticated: true,
			},
			want: Verdict{Decision: Allow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequireAuth(tt.snap))
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name string
		snap session.Snapshot
		want Verdict
	}{
		{
			name: "pending while bootstrapping",
			snap: session.Snapshot{Loading: true},
			want: Verdict{Decision: Pending},
		},
		{
			name: "sends anonymous sessions home",
			snap: session.Snapshot{},
			want: Verdict{Decision: Redirect, Target: RouteHome},
		},
		{
			name: "sends regular users home",
			snap: session.Snapshot{
				Token:         "T",
				Identity:      &domain.User{ID: "u1", Role: domain.RoleUser},
				Authenticated: true,
			},
			want: Verdict{Decision: Redirect, Target: RouteHome},
		},
		{
			name: "allows admins",
			snap: session.Snapshot{
				Token:         "T",
				Identity:      &domain.User{ID: "a1", Role: domain.RoleAdmin},
				Authenticated: true,
			},
			want: Verdict{Decision: Allow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequireAdmin(tt.snap))
		})
	}
}
