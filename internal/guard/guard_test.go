package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobtrack/internal/models"
	"go-jobtrack/internal/session"
)

func TestRouteDecisions(t *testing.T) {
	loading := session.Snapshot{Loading: true}
	loadingWithToken := session.Snapshot{Loading: true, Token: "tok"}
	anonymous := session.Snapshot{}
	authenticated := session.Snapshot{Token: "tok", User: &models.User{ID: 1, Email: "a@b.com"}}

	tests := []struct {
		name   string
		snap   session.Snapshot
		authed Decision
		anon   Decision
	}{
		{
			name:   "loading never redirects",
			snap:   loading,
			authed: Pending,
			anon:   Pending,
		},
		{
			name:   "loading with stored token still pending",
			snap:   loadingWithToken,
			authed: Pending,
			anon:   Pending,
		},
		{
			name:   "anonymous",
			snap:   anonymous,
			authed: RedirectLogin,
			anon:   Render,
		},
		{
			name:   "authenticated",
			snap:   authenticated,
			authed: Render,
			anon:   RedirectHome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.authed, RequireAuthenticated(tt.snap))
			assert.Equal(t, tt.anon, RequireAnonymous(tt.snap))
		})
	}
}

func TestIsAuthenticatedDerivedFromToken(t *testing.T) {
	// A user without a token is not authenticated; the token is the only
	// signal the client trusts.
	snap := session.Snapshot{User: &models.User{ID: 1}}
	assert.False(t, snap.IsAuthenticated())

	snap = session.Snapshot{Token: "tok"}
	assert.True(t, snap.IsAuthenticated())
}
