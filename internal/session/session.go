// Package session holds the client's authentication state.
//
// A [Session] starts in [Initializing], moves to [Anonymous] or
// [Authenticated] once the persisted record has been read, and afterwards
// switches between the two on [Session.Login] and [Session.Logout]. Token
// and user are always held, persisted and cleared together.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// Session is the process-wide authentication state. It is safe for
// concurrent use.
type Session struct {
	store  store.TokenStore
	logger *logger.Logger

	initOnce sync.Once
	initErr  error

	mu    sync.RWMutex
	state State
	token string
	user  models.User
}

// New returns a Session in the [Initializing] state backed by tokenStore.
func New(tokenStore store.TokenStore, log *logger.Logger) *Session {
	return &Session{
		store:  tokenStore,
		logger: log,
		state:  Initializing,
	}
}

// Init reads the token store and leaves Initializing. Only the first call
// does any work; later calls return the first result.
//
// A storage I/O failure still moves the session to Anonymous so the UI is
// never stuck on the placeholder; the error is returned for logging.
func (s *Session) Init(ctx context.Context) error {
	s.initOnce.Do(func() {
		persisted, ok, err := s.store.Load(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()

		// a Login or Logout that raced the read wins
		if s.state != Initializing {
			return
		}

		if err != nil {
			s.logger.Err(err).Str("func", "Session.Init").Msg("error reading persisted session")
			s.initErr = fmt.Errorf("read persisted session: %w", err)
			s.setAnonymous()
			return
		}

		if !ok {
			s.setAnonymous()
			return
		}

		s.token = persisted.Token
		s.user = persisted.User
		s.state = Authenticated
		s.logger.Debug().Str("func", "Session.Init").Str("user_id", persisted.User.ID.String()).Msg("session restored")
	})

	return s.initErr
}

// Login stores the pair and switches to Authenticated. The pair is written
// to the token store first; on a write failure the state is unchanged.
func (s *Session) Login(ctx context.Context, user models.User, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if user.IsEmpty() {
		return ErrEmptyUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, user, token); err != nil {
		s.logger.Err(err).Str("func", "Session.Login").Msg("error persisting session")
		return fmt.Errorf("persist session: %w", err)
	}

	s.token = token
	s.user = user
	s.state = Authenticated
	return nil
}

// Logout clears the token store and switches to Anonymous. The in-memory
// state is cleared even when the store fails; the failure is returned.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.Clear(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "Session.Logout").Msg("error clearing persisted session")
		err = fmt.Errorf("clear persisted session: %w", err)
	}

	s.setAnonymous()
	return err
}

// IsAuthenticated reports whether the session is Authenticated.
func (s *Session) IsAuthenticated() bool {
	return s.State() == Authenticated
}

// State returns the current status.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Token returns the current bearer token, or "" when none is held.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current profile and whether one is held.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.state == Authenticated
}

// setAnonymous must be called with mu held.
func (s *Session) setAnonymous() {
	s.token = ""
	s.user = models.User{}
	s.state = Anonymous
}
