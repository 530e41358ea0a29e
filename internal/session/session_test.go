package session

import (
	"context"
	"testing"

	"apex-store/internal/model"
	"apex-store/internal/snapshot"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *snapshot.MemoryStore) {
	t.Helper()
	snap := snapshot.NewMemoryStore()
	return NewStore(context.Background(), snap, zerolog.Nop()), snap
}

func TestRoleForEmail(t *testing.T) {
	tests := []struct {
		email string
		want  model.Role
	}{
		{"admin@x.com", model.RoleAdmin},
		{"shop.admin@x.com", model.RoleAdmin},
		{"jane@x.com", model.RoleUser},
		{"jane@admin-corp.com", model.RoleAdmin},
		{"", model.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, RoleForEmail(tt.email))
		})
	}
}

func TestStore_Login(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	user := s.Login(ctx, "jane@x.com", RoleForEmail("jane@x.com"))

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "jane", user.Name)
	assert.Equal(t, "jane@x.com", user.Email)
	assert.Equal(t, model.RoleUser, user.Role)

	current := s.Current()
	require.NotNil(t, current)
	assert.Equal(t, user, *current)
}

func TestStore_Login_AdminEmail(t *testing.T) {
	s, _ := newTestStore(t)

	user := s.Login(context.Background(), "admin@x.com", RoleForEmail("admin@x.com"))

	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.True(t, s.IsAdmin())
}

func TestStore_Login_EmptyRoleDefaultsToUser(t *testing.T) {
	s, _ := newTestStore(t)

	user := s.Login(context.Background(), "jane@x.com", "")

	assert.Equal(t, model.RoleUser, user.Role)
	assert.False(t, s.IsAdmin())
}

func TestStore_Login_ReplacesExistingSession(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Login(ctx, "admin@x.com", model.RoleAdmin)
	s.Login(ctx, "jane@x.com", model.RoleUser)

	current := s.Current()
	require.NotNil(t, current)
	assert.Equal(t, "jane@x.com", current.Email)
	assert.False(t, s.IsAdmin())
}

func TestStore_Logout(t *testing.T) {
	s, snap := newTestStore(t)
	ctx := context.Background()

	s.Login(ctx, "jane@x.com", model.RoleUser)
	s.Logout(ctx)

	assert.Nil(t, s.Current())
	assert.False(t, s.IsAdmin())

	// The persisted snapshot is gone too
	data, err := snap.Load(ctx, snapshot.KeySession)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestStore_IsAdmin_NoSessionAndNonAdminLookAlike(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	assert.False(t, s.IsAdmin(), "no session denies admin access")

	s.Login(ctx, "jane@x.com", model.RoleUser)
	assert.False(t, s.IsAdmin(), "non-admin session denies admin access")
}

func TestStore_RoundTripThroughSnapshot(t *testing.T) {
	ctx := context.Background()
	snap := snapshot.NewMemoryStore()

	s := NewStore(ctx, snap, zerolog.Nop())
	user := s.Login(ctx, "admin@x.com", model.RoleAdmin)

	restored := NewStore(ctx, snap, zerolog.Nop())
	current := restored.Current()
	require.NotNil(t, current)
	assert.Equal(t, user, *current)
	assert.True(t, restored.IsAdmin())
}

func TestStore_MalformedSnapshotStartsSignedOut(t *testing.T) {
	ctx := context.Background()
	snap := snapshot.NewMemoryStore()
	require.NoError(t, snap.Save(ctx, snapshot.KeySession, []byte("not json")))

	s := NewStore(ctx, snap, zerolog.Nop())
	assert.Nil(t, s.Current())
}

func TestStore_CurrentReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Login(ctx, "jane@x.com", model.RoleUser)

	current := s.Current()
	current.Role = model.RoleAdmin

	assert.False(t, s.IsAdmin(), "mutating the returned user must not touch the session")
}
