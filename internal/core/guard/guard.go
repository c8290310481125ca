// Package guard decides whether a navigation target may render for the
// current session. Guards are pure predicates over a session Snapshot; they
// hold no state of their own.
package guard

import "github.com/creatorhub/platform-client/internal/core/session"

// Decision is the outcome of evaluating a guard.
type Decision int

const (
	// Pending means the session is still bootstrapping: render a neutral
	// placeholder, make no routing decision yet.
	Pending Decision = iota
	// Allow renders the requested view.
	Allow
	// Redirect sends the caller to Verdict.Target instead.
	Redirect
)

// Default redirect targets.
const (
	RouteLogin = "/login"
	RouteHome  = "/"
)

// Verdict carries the decision and, for Redirect, where to go.
type Verdict struct {
	Decision Decision
	Target   string
}

// RequireAuth admits any authenticated session.
//
// The loading check runs strictly before the auth check: redirecting while
// the initial session validation is still in flight would bounce a user who
// is about to be restored.
func RequireAuth(s session.Snapshot) Verdict {
	if s.Loading {
		return Verdict{Decision: Pending}
	}
	if !s.Authenticated {
		return Verdict{Decision: Redirect, Target: RouteLogin}
	}
	return Verdict{Decision: Allow}
}

// RequireAdmin admits only authenticated sessions whose identity carries the
// admin role. Non-admins are sent home, not to login.
func RequireAdmin(s session.Snapshot) Verdict {
	if s.Loading {
		return Verdict{Decision: Pending}
	}
	if !s.Authenticated || !s.Identity.IsAdmin() {
		return Verdict{Decision: Redirect, Target: RouteHome}
	}
	return Verdict{Decision: Allow}
}
