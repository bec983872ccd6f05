// Package session holds the identity of the signed-in user.
//
// A Session is built explicitly, hydrated from a KeyValueStore, and passed to
// whatever needs to know who is signed in. Nothing here is global.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/opst/foodfab/pkg/api/types/users"
)

// keys in KeyValueStore.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

var (
	ErrNotAuthenticated = errors.New("not signed in")
	ErrForbidden        = errors.New("permission denied")
)

// AuthError is a failure of login or registration.
type AuthError struct {
	// "login" or "register"
	Op  string
	Err error
}

func (a *AuthError) Error() string {
	return fmt.Sprintf("%s failed: %s", a.Op, a.Err)
}

func (a *AuthError) Unwrap() error {
	return a.Err
}

// Authenticator talks to the backend for authentication.
type Authenticator interface {
	Login(ctx context.Context, cred users.Credentials) (*users.LoginResponse, error)
	Register(ctx context.Context, reg users.Registration) (*users.User, error)
}

type Session struct {
	mu    sync.RWMutex
	store KeyValueStore
	auth  Authenticator

	token string
	user  *users.User
}

// New creates an unauthenticated Session. Call Hydrate to restore the identity.
func New(store KeyValueStore, auth Authenticator) *Session {
	return &Session{store: store, auth: auth}
}

// Hydrate restores the identity from the store.
//
// When either of token or user is missing, the session is unauthenticated.
func (s *Session) Hydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token, s.user = "", nil

	token, tokenOk, err := s.store.Get(KeyToken)
	if err != nil {
		return err
	}
	rawUser, userOk, err := s.store.Get(KeyUser)
	if err != nil {
		return err
	}
	if !tokenOk || !userOk || token == "" {
		return nil
	}

	u := new(users.User)
	if err := json.Unmarshal([]byte(rawUser), u); err != nil {
		return fmt.Errorf("stored user is broken. try logging in again: %w", err)
	}
	s.token, s.user = token, u
	return nil
}

// Login authenticates with credentials, and persists the identity on success.
//
// When the backend rejects it, the error is *AuthError.
func (s *Session) Login(ctx context.Context, cred users.Credentials) (*users.User, error) {
	resp, err := s.auth.Login(ctx, cred)
	if err != nil {
		return nil, &AuthError{Op: "login", Err: err}
	}
	if resp.Token == "" {
		return nil, &AuthError{Op: "login", Err: errors.New("server returned no token")}
	}

	rawUser, err := json.Marshal(resp.User)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Set(KeyToken, resp.Token); err != nil {
		return nil, err
	}
	if err := s.store.Set(KeyUser, string(rawUser)); err != nil {
		return nil, errors.Join(err, s.store.Delete(KeyToken))
	}

	u := resp.User
	s.token, s.user = resp.Token, &u
	return &u, nil
}

// Register signs up a new user. It does not sign in.
//
// When the backend rejects it, the error is *AuthError.
func (s *Session) Register(ctx context.Context, reg users.Registration) (*users.User, error) {
	u, err := s.auth.Register(ctx, reg)
	if err != nil {
		return nil, &AuthError{Op: "register", Err: err}
	}
	return u, nil
}

// Logout forgets the identity, both in memory and in the store.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user = "", nil
	return s.store.Delete(KeyToken, KeyUser)
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// HasRole reports the signed-in user has exactly the role.
func (s *Session) HasRole(role users.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Role == role
}

// Require returns nil when signed in and, if roles are given, having one of them.
//
// Otherwise, it returns ErrNotAuthenticated or ErrForbidden.
func (s *Session) Require(roles ...users.Role) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.user == nil {
		return ErrNotAuthenticated
	}
	if len(roles) == 0 {
		return nil
	}
	for _, r := range roles {
		if s.user.Role == r {
			return nil
		}
	}
	return fmt.Errorf("%w: requires role %v, but you are %s", ErrForbidden, roles, s.user.Role)
}

// User is the signed-in user, or nil.
func (s *Session) User() *users.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token is the bearer credential, or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ExpiresAt reads the "exp" claim of the token.
//
// The token is not verified; the result is informational only.
// ok is false when unauthenticated, or the token is not a JWT having "exp".
func (s *Session) ExpiresAt() (exp time.Time, ok bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	nd, err := parsed.Claims.GetExpirationTime()
	if err != nil || nd == nil {
		return time.Time{}, false
	}
	return nd.Time, true
}
