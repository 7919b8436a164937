// Package session is the single source of truth for "who is logged in and
// with what credential". The token and the user profile are always written
// and cleared together, both in memory and in durable storage, so the
// client can never observe a half-authenticated state.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/darasa/darasa-go/core"
	"github.com/darasa/darasa-go/storage"
)

// storage keys; always persisted and cleared as a pair
const (
	storageTokenKey = "token"
	storageUserKey  = "user"
)

// AuthAPI is the authentication collaborator the store delegates network
// calls to. api.AuthService implements it.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
	Register(ctx context.Context, reg Registration) (*User, error)
	Me(ctx context.Context) (*User, error)
	UpdateMe(ctx context.Context, upd ProfileUpdate) (*User, error)
	ChangePassword(ctx context.Context, pc PasswordChange) error
	Logout(ctx context.Context) error
}

type Store struct {
	auth AuthAPI
	kv   storage.Storage
	log  core.Logger

	mu    sync.Mutex
	token string
	user  *User
}

func NewStore(kv storage.Storage, auth AuthAPI, log core.Logger) *Store {
	if log == nil {
		log = core.NopLogger()
	}
	return &Store{auth: auth, kv: kv, log: log}
}

// Login authenticates against the backend and, on a response carrying a
// token, adopts and persists the token+user pair. A response without a
// token fails with an authentication error and leaves prior state
// untouched; network and server errors propagate unchanged.
func (s *Store) Login(ctx context.Context, creds Credentials) (*User, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	res, err := s.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if res == nil || res.Token == "" || res.User == nil {
		return nil, &core.APIError{Kind: core.KindAuthentication, Message: "login failed"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = res.Token
	s.user = res.User
	s.persistLocked()
	return s.user, nil
}

// Register delegates to the backend; it never touches session state.
func (s *Store) Register(ctx context.Context, reg Registration) (*User, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return s.auth.Register(ctx, reg)
}

// CurrentUser refreshes the profile from the backend using the existing
// token. A failed "who am I" call usually means the token is no longer
// valid, so any error forces a full logout before propagating.
func (s *Store) CurrentUser(ctx context.Context) (*User, error) {
	usr, err := s.auth.Me(ctx)
	if err != nil {
		s.Logout(ctx)
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = usr
	s.persistUserLocked()
	return s.user, nil
}

// UpdateProfile merges the fields the backend echoes back into the current
// profile and re-persists it. On failure in-memory state is left unchanged.
func (s *Store) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*User, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}
	usr, err := s.auth.UpdateMe(ctx, upd)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = mergeProfile(s.user, usr)
	s.persistUserLocked()
	return s.user, nil
}

// ChangePassword delegates to the backend; no local state changes.
func (s *Store) ChangePassword(ctx context.Context, pc PasswordChange) error {
	if err := pc.Validate(); err != nil {
		return err
	}
	return s.auth.ChangePassword(ctx, pc)
}

// Logout notifies the backend on a best-effort basis (a failed call is
// logged and ignored) and then unconditionally clears the session. It is
// idempotent and never fails.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token != "" && s.auth != nil {
		if err := s.auth.Logout(ctx); err != nil {
			s.log.Warn("session: backend logout failed", err)
		}
	}
	s.Invalidate()
}

// Invalidate clears the token+user pair locally, memory and storage, with
// no backend call. The request pipeline uses it on 401.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	if err := s.kv.Delete(storageTokenKey, storageUserKey); err != nil {
		s.log.Warn("session: clearing persisted state failed", err)
	}
}

// Restore adopts a previously persisted session at startup. Anything short
// of a complete, parseable token+user pair ends in a fully logged-out
// state, never a crash and never half a session.
func (s *Store) Restore() {
	token, okTok, errTok := s.kv.Get(storageTokenKey)
	rawUser, okUsr, errUsr := s.kv.Get(storageUserKey)
	if errTok != nil || errUsr != nil {
		s.log.Warn("session: reading persisted state failed", errTok, errUsr)
		return
	}
	hasToken := okTok && token != ""
	hasUser := okUsr && rawUser != ""

	if hasToken && hasUser {
		var usr User
		if err := json.Unmarshal([]byte(rawUser), &usr); err != nil {
			s.log.Warn("session: corrupt persisted user, logging out", err)
			s.Invalidate()
			return
		}
		s.mu.Lock()
		s.token = token
		s.user = &usr
		s.mu.Unlock()
		return
	}
	if hasToken || hasUser {
		// half a pair is corruption too
		s.Invalidate()
	}
}

// IsLoggedIn holds iff both the token and the user are set.
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

// Token implements transport.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	usr := *s.user
	return &usr
}

func (s *Store) UserID() int64 {
	if u := s.User(); u != nil {
		return u.ID
	}
	return 0
}

func (s *Store) Role() Role {
	if u := s.User(); u != nil {
		return u.Role
	}
	return ""
}

func (s *Store) DisplayName() string { return s.User().DisplayName() }

func (s *Store) Avatar() string {
	if u := s.User(); u != nil {
		return u.AvatarURL
	}
	return ""
}

// Claims peeks into the current token; nil when logged out.
func (s *Store) Claims() (*Claims, error) {
	token := s.Token()
	if token == "" {
		return nil, nil
	}
	return ParseClaims(token)
}

// DefaultRoute maps the session role to its home page.
func (s *Store) DefaultRoute() string {
	switch s.Role() {
	case RoleAdmin:
		return RouteAdminDashboard
	case RoleTeacher:
		return RouteTeacherDashboard
	case RoleStudent:
		return RouteStudentDashboard
	}
	return RouteLogin
}

func (s *Store) persistLocked() {
	if err := s.kv.Set(storageTokenKey, s.token); err != nil {
		s.log.Warn("session: persisting token failed", err)
	}
	s.persistUserLocked()
}

func (s *Store) persistUserLocked() {
	raw, err := json.Marshal(s.user)
	if err != nil {
		s.log.Warn("session: encoding user failed", err)
		return
	}
	if err := s.kv.Set(storageUserKey, string(raw)); err != nil {
		s.log.Warn("session: persisting user failed", err)
	}
}

// mergeProfile overlays the non-zero fields of resp onto the existing
// profile; the backend may echo back only the fields it changed.
func mergeProfile(existing, resp *User) *User {
	if existing == nil {
		return resp
	}
	if resp == nil {
		return existing
	}
	merged := *existing
	if resp.ID != 0 {
		merged.ID = resp.ID
	}
	if resp.Username != "" {
		merged.Username = resp.Username
	}
	if resp.FullName != "" {
		merged.FullName = resp.FullName
	}
	if resp.Email != "" {
		merged.Email = resp.Email
	}
	if resp.Role != "" {
		merged.Role = resp.Role
	}
	if resp.AvatarURL != "" {
		merged.AvatarURL = resp.AvatarURL
	}
	if resp.CreatedAt != "" {
		merged.CreatedAt = resp.CreatedAt
	}
	return &merged
}
