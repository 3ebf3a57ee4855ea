// Package session holds the client-side authentication state: the
// current user, their access token, a loading flag and the last error
// message. The store is an injectable object, not package state, so
// tests and multiple frontends can hold independent instances.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"vaxreg/internal/client/api"
	"vaxreg/internal/logging"
	"vaxreg/internal/models"
)

// AuthError is returned by sign-up, sign-in and sign-out failures. It
// carries the backend's message verbatim; the same text is kept in the
// store's LastError until ClearError is called.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// Store tracks the authenticated user. The zero state is anonymous:
// no user, no token. All methods are safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	api    api.Client
	logger logging.Logger

	user      *models.User
	token     string
	loading   bool
	lastError string
}

func NewStore(client api.Client, logger logging.Logger) *Store {
	return &Store{api: client, logger: logger}
}

// User returns the current user, or nil when anonymous.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAdmin reports whether the current user holds the admin role. It is
// derived from the user's role, never stored, so it cannot drift.
func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return false
	}
	return s.user.Role.IsAdmin()
}

// IsLoggedIn reports whether a user is signed in.
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// Loading reports whether an auth operation is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the message of the most recent failure, or "".
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// ClearError resets the stored error message.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = ""
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *Store) fail(err error) *AuthError {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = err.Error()
	return &AuthError{Message: err.Error()}
}

func (s *Store) setAnonymous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
}

// SignUp creates a credential record and then a profile row for it.
// It deliberately does NOT authenticate: the store stays anonymous and
// the caller signs in as a separate step. If the profile insert fails
// after the credentials were created, the half-created account is left
// as is; a later sign-up with the same email reports a conflict.
func (s *Store) SignUp(ctx context.Context, email, password, displayName string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return s.fail(errors.New("email and password are required"))
	}

	s.setLoading(true)
	defer s.setLoading(false)

	id, err := s.api.CreateIdentity(ctx, email, password)
	if err != nil {
		return s.fail(err)
	}

	if _, err := s.api.CreateProfile(ctx, id, email, displayName, models.RoleUser); err != nil {
		return s.fail(err)
	}

	s.ClearError()
	return nil
}

// SignIn authenticates and loads the user's profile. On success the
// store holds the user and access token; on failure the state is left
// anonymous and the backend's message is recorded.
func (s *Store) SignIn(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return s.fail(errors.New("email and password are required"))
	}

	s.setLoading(true)
	defer s.setLoading(false)

	id, err := s.api.Authenticate(ctx, email, password)
	if err != nil {
		return s.fail(err)
	}

	user, err := s.api.GetProfile(ctx, id)
	if err != nil {
		s.api.ClearTokens()
		s.setAnonymous()
		return s.fail(err)
	}

	s.mu.Lock()
	s.user = user
	s.token = s.api.AccessToken()
	s.lastError = ""
	s.mu.Unlock()

	return nil
}

// SignOut invalidates the backend session first and clears local state
// only if that succeeds. A failed sign-out leaves the user signed in.
func (s *Store) SignOut(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.api.InvalidateSession(ctx); err != nil {
		return s.fail(err)
	}

	s.api.ClearTokens()
	s.setAnonymous()
	s.ClearError()
	return nil
}

// FetchCurrentUser resolves the held token to a user and updates the
// store. It never returns an error: an invalid or missing session and
// a missing profile row are both valid anonymous outcomes, and any
// other failure is logged and likewise leaves the store anonymous.
func (s *Store) FetchCurrentUser(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	id, err := s.api.GetSession(ctx)
	if err != nil {
		if !errors.Is(err, api.ErrUnauthorized) {
			s.logger.Warn(ctx, "session check failed", "err", err)
		}
		s.setAnonymous()
		return
	}

	user, err := s.api.GetProfile(ctx, id)
	if err != nil {
		if !errors.Is(err, api.ErrNotFound) {
			s.logger.Warn(ctx, "profile fetch failed", "err", err)
		}
		s.setAnonymous()
		return
	}

	s.mu.Lock()
	s.user = user
	s.token = s.api.AccessToken()
	s.mu.Unlock()
}
