// Package session owns the client's record of who is logged in. All other
// components read it through immutable snapshots; the only mutations are
// the four operations below (login, register, logout, bootstrap).
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-jobtrack/internal/api"
	"go-jobtrack/internal/models"
)

// Snapshot is an immutable view of the session. IsAuthenticated is derived
// from token presence and nothing else.
type Snapshot struct {
	User    *models.User
	Token   string
	Loading bool
}

func (s Snapshot) IsAuthenticated() bool {
	return s.Token != ""
}

// Store is the single source of truth for the session.
type Store struct {
	mu      sync.Mutex
	client  *api.Client
	storage TokenStorage
	user    *models.User
	token   string
	loading bool

	bootstrapOnce sync.Once
}

func NewStore(client *api.Client, storage TokenStorage) *Store {
	return &Store{
		client:  client,
		storage: storage,
		loading: true,
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{Token: s.token, Loading: s.loading}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// Bootstrap hydrates the session from the persisted token, once per
// process. Any failure along the way means "not authenticated", not an
// error: an expired or revoked token is the expected path, and it is
// cleared so the next start skips the round trip. Loading resolves to
// false exactly once, whatever the outcome.
func (s *Store) Bootstrap(ctx context.Context) {
	s.bootstrapOnce.Do(func() {
		defer func() {
			s.mu.Lock()
			s.loading = false
			s.mu.Unlock()
		}()

		token, err := s.storage.Load()
		if err != nil || token == "" {
			return
		}
		if tokenExpired(token, time.Now()) {
			_ = s.storage.Clear()
			return
		}
		user, err := s.client.CurrentUser(ctx)
		if err != nil {
			_ = s.storage.Clear()
			return
		}
		s.mu.Lock()
		s.user = user
		s.token = token
		s.mu.Unlock()
	})
}

// Login authenticates, persists the token, and populates the session with
// the fetched profile. On any failure the session is left as it was and
// the failure propagates untouched to the caller.
func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	auth, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.storage.Save(auth.AccessToken); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		// Roll the half-established session back so login stays atomic.
		_ = s.storage.Clear()
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.token = auth.AccessToken
	s.mu.Unlock()
	return user, nil
}

// Register creates the account but does not establish a session; the user
// logs in afterwards.
func (s *Store) Register(ctx context.Context, email, fullName, password string) (*models.User, error) {
	return s.client.Register(ctx, email, fullName, password)
}

// Logout clears durable storage and the in-memory session synchronously.
// No server call is involved; repeated logouts are fine.
func (s *Store) Logout() {
	_ = s.storage.Clear()
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
}
