// Package session holds the single current authenticated identity. Login is
// a mock: there is no credential verification, and the admin role comes from
// a pattern match on the email string.
package session

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"apex-store/internal/model"
	"apex-store/internal/snapshot"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store holds at most one live session. Login replaces any existing session
// unconditionally; Logout clears it and removes the persisted snapshot.
type Store struct {
	mu     sync.Mutex
	user   *model.User
	snap   snapshot.Store
	logger zerolog.Logger

	newID func() string
}

// NewStore creates a session store restored from its snapshot. An absent or
// malformed snapshot yields no session, never an error.
func NewStore(ctx context.Context, snap snapshot.Store, logger zerolog.Logger) *Store {
	s := &Store{
		snap:   snap,
		logger: logger.With().Str("store", "session").Logger(),
		newID:  uuid.NewString,
	}

	data, err := snap.Load(ctx, snapshot.KeySession)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load session snapshot, starting signed out")
		return s
	}
	if data == nil {
		return s
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.logger.Warn().Err(err).Msg("malformed session snapshot, starting signed out")
		return s
	}

	s.user = &user
	s.logger.Debug().Str("email", user.Email).Msg("session restored from snapshot")

	return s
}

// RoleForEmail returns the role the mock login grants the email: admin when
// the email contains the substring "admin", user otherwise. This is a demo
// shortcut kept for behavioural parity, not an authorisation mechanism.
func RoleForEmail(email string) model.Role {
	if strings.Contains(email, "admin") {
		return model.RoleAdmin
	}
	return model.RoleUser
}

// Login creates a session for the email, replacing any existing session.
// The display name is the email local-part before the first '@'; an empty
// role defaults to user.
func (s *Store) Login(ctx context.Context, email string, role model.Role) model.User {
	if role == "" {
		role = model.RoleUser
	}

	name, _, _ := strings.Cut(email, "@")

	user := model.User{
		ID:    s.newID(),
		Name:  name,
		Email: email,
		Role:  role,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	s.persist(ctx)

	s.logger.Info().Str("email", email).Str("role", string(role)).Msg("session started")

	return user
}

// Logout clears the session and deletes its snapshot.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil

	if err := s.snap.Delete(ctx, snapshot.KeySession); err != nil {
		s.logger.Error().Err(err).Msg("failed to delete session snapshot")
	}

	s.logger.Info().Msg("session ended")
}

// Current returns a copy of the live session, or nil when signed out.
func (s *Store) Current() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}

	user := *s.user
	return &user
}

// IsAdmin reports whether a session exists and carries the admin role.
// Admin-gated views treat a missing session and a non-admin session
// identically.
func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.user != nil && s.user.Role == model.RoleAdmin
}

// persist writes the session under its key. Callers hold the mutex.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.user)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to marshal session snapshot")
		return
	}

	if err := s.snap.Save(ctx, snapshot.KeySession, data); err != nil {
		s.logger.Error().Err(err).Msg("failed to write session snapshot")
	}
}
