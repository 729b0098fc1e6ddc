// Package session owns the authenticated-user state of the gateway. The
// store is constructed once and injected; nothing else holds a user copy
// beyond a single request.
package session

import (
	"context"
	"sync"
	"time"

	"homegate/pkg/client"
	apperrors "homegate/pkg/errors"
	"homegate/pkg/logger"
	"homegate/pkg/model"
)

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "uninitialized"
}

type Store struct {
	mu    sync.RWMutex
	state State
	user  *model.User

	auth   *client.AuthClient
	tokens *TokenStore
	log    *logger.Logger

	// logout reconciliation knobs, overridable in tests
	logoutAttempts int
	logoutDelay    time.Duration
	logoutTimeout  time.Duration
	background     sync.WaitGroup
}

func NewStore(auth *client.AuthClient, tokens *TokenStore, log *logger.Logger) *Store {
	return &Store{
		state:          StateUninitialized,
		auth:           auth,
		tokens:         tokens,
		log:            log,
		logoutAttempts: 3,
		logoutDelay:    2 * time.Second,
		logoutTimeout:  5 * time.Second,
	}
}

func (s *Store) setState(state State, user *model.User) {
	s.mu.Lock()
	s.state = state
	s.user = user
	s.mu.Unlock()
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns a copy of the authenticated user, or nil. Callers must not
// hold it across requests; the store is the single owner of session state.
func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Bootstrap verifies any stored token against /users/me at startup. It is
// the sole suspension point before protected routes may render: the guard
// holds everything back until the state leaves loading.
func (s *Store) Bootstrap(ctx context.Context) {
	s.setState(StateLoading, nil)

	if s.tokens.Token() == "" {
		s.log.Info("No stored token, starting unauthenticated")
		s.setState(StateUnauthenticated, nil)
		return
	}

	user, err := s.auth.Me(ctx)
	if err != nil {
		if client.IsUnauthorized(err) {
			s.log.Info("Stored token rejected, clearing it")
			if clearErr := s.tokens.Clear(); clearErr != nil {
				s.log.Warn("Failed to clear rejected token", "error", clearErr)
			}
		} else {
			s.log.Warn("Session bootstrap failed", "error", err)
		}
		s.setState(StateUnauthenticated, nil)
		return
	}

	s.log.Info("Session restored", "user_id", user.ID, "role", user.Role)
	s.setState(StateAuthenticated, user)
}

func (s *Store) Login(ctx context.Context, creds model.LoginRequest) (*model.User, error) {
	raw, err := s.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.establishSession(ctx, raw)
}

func (s *Store) Signup(ctx context.Context, payload model.SignupRequest) (*model.User, error) {
	raw, err := s.auth.Signup(ctx, payload)
	if err != nil {
		return nil, err
	}
	return s.establishSession(ctx, raw)
}

// establishSession is the single trust path for both login and signup: the
// returned token is persisted first, then the identity is re-verified with a
// fresh /users/me call before the session is marked authenticated. A token is
// never trusted on the say-so of the credential exchange alone.
func (s *Store) establishSession(ctx context.Context, raw *client.AuthResponse) (*model.User, error) {
	if raw.Token == "" {
		return nil, apperrors.Unauthorized("authentication response carried no token")
	}
	if err := s.tokens.Save(raw.Token); err != nil {
		return nil, apperrors.Internal("Failed to persist session token", err)
	}

	user, err := s.auth.Me(ctx)
	if err != nil {
		if clearErr := s.tokens.Clear(); clearErr != nil {
			s.log.Warn("Failed to clear token after verification failure", "error", clearErr)
		}
		s.setState(StateUnauthenticated, nil)
		return nil, err
	}

	s.log.Info("Session established", "user_id", user.ID, "role", user.Role)
	s.setState(StateAuthenticated, user)
	return user, nil
}

// Logout clears the session immediately and reconciles with the server in
// the background. Responsiveness is favoured over confirmed consistency: a
// failed server-side invalidation never rolls the client back, it is retried
// a few times and then logged.
func (s *Store) Logout() {
	s.setState(StateUnauthenticated, nil)
	if err := s.tokens.Clear(); err != nil {
		s.log.Warn("Failed to clear token on logout", "error", err)
	}

	s.background.Add(1)
	go func() {
		defer s.background.Done()
		for attempt := 1; attempt <= s.logoutAttempts; attempt++ {
			ctx, cancel := context.WithTimeout(context.Background(), s.logoutTimeout)
			err := s.auth.Logout(ctx)
			cancel()
			if err == nil {
				return
			}
			s.log.Warn("Server-side logout failed", "attempt", attempt, "error", err)
			if attempt < s.logoutAttempts {
				time.Sleep(s.logoutDelay)
			}
		}
		s.log.Error("Server-side session invalidation abandoned", "attempts", s.logoutAttempts)
	}()
}

// Wait blocks until background logout reconciliation has drained. The
// application runner calls it during shutdown so in-flight server calls are
// not abandoned mid-request.
func (s *Store) Wait() {
	s.background.Wait()
}

// Invalidate drops the session after an observed authorization failure.
// It is registered as the API client's 401 hook so expiry is handled in one
// place rather than per call site.
func (s *Store) Invalidate() {
	s.setState(StateUnauthenticated, nil)
	if err := s.tokens.Clear(); err != nil {
		s.log.Warn("Failed to clear token on session invalidation", "error", err)
	}
	s.log.Info("Session invalidated after authorization failure")
}

// CanAccess is a flat role check: true when authenticated and either no role
// is required or the session role matches exactly. There is no hierarchy;
// callers needing "admin or agent" check both explicitly.
func (s *Store) CanAccess(required model.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateAuthenticated || s.user == nil {
		return false
	}
	if required == "" {
		return true
	}
	return s.user.Role == required
}
