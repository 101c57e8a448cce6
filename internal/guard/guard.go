// Package guard holds the two route-access decisions as pure functions of
// a session snapshot, so the three-state logic (loading / authenticated /
// anonymous) is testable without any terminal or rendering involved.
package guard

import "go-jobtrack/internal/session"

type Decision int

const (
	// Pending: the session is still bootstrapping. Neither guard may
	// redirect yet; redirecting here bounces a logged-in user to login
	// and straight back.
	Pending Decision = iota
	// Render: the requested view may proceed.
	Render
	// RedirectLogin: anonymous user on an authenticated-only view.
	RedirectLogin
	// RedirectHome: authenticated user on an anonymous-only view.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// RequireAuthenticated gates views that need a logged-in user.
func RequireAuthenticated(s session.Snapshot) Decision {
	if s.Loading {
		return Pending
	}
	if s.IsAuthenticated() {
		return Render
	}
	return RedirectLogin
}

// RequireAnonymous gates login/register, which a logged-in user skips.
func RequireAnonymous(s session.Snapshot) Decision {
	if s.Loading {
		return Pending
	}
	if !s.IsAuthenticated() {
		return Render
	}
	return RedirectHome
}
