package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vinyl-api/internal/domain/users"
	"vinyl-api/internal/types"
)

func TestCreateUser_DefaultsToCustomer(t *testing.T) {
	s, clock := newTestStore(t)

	u, err := s.CreateUser(NewUser{Email: "dana@example.com", PasswordHash: "h", Active: true})
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, users.RoleCustomer, u.Role)
	assert.Equal(t, types.NewTimestamp(clock.Now()), u.CreatedAt)
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)

	got, ok := s.GetUser(u.ID)
	require.True(t, ok)
	assert.Equal(t, u, got)
}

func TestCreateUser_Validation(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.CreateUser(NewUser{Email: "  "})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = s.CreateUser(NewUser{Email: "x@example.com", Role: "ROOT"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, s.ListUsers())
}

func TestFindUserByEmail_ExactMatch(t *testing.T) {
	s, _ := newTestStore(t)
	u, _ := s.CreateUser(NewUser{Email: "dana@example.com"})

	got, ok := s.FindUserByEmail("dana@example.com")
	require.True(t, ok)
	assert.Equal(t, u.ID, got.ID)

	_, ok = s.FindUserByEmail("Dana@example.com")
	assert.False(t, ok)
}

func TestUpdateUser_Merge(t *testing.T) {
	s, clock := newTestStore(t)
	u, _ := s.CreateUser(NewUser{Email: "dana@example.com", PasswordHash: "h", Active: true})

	clock.Advance(time.Hour)
	got, err := s.UpdateUser(u.ID, UserPatch{Role: types.Some(users.RoleStaff), Active: types.Some(false)})
	require.NoError(t, err)
	assert.Equal(t, users.RoleStaff, got.Role)
	assert.False(t, got.Active)
	assert.Equal(t, "dana@example.com", got.Email)
	assert.Equal(t, "h", got.PasswordHash)
	assert.Equal(t, u.CreatedAt, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(u.UpdatedAt.Time))

	_, err = s.UpdateUser(u.ID, UserPatch{Role: types.Some(users.Role("ROOT"))})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = s.UpdateUser(42, UserPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUser_CascadesAddresses(t *testing.T) {
	s, _ := newTestStore(t)
	u, _ := s.CreateUser(NewUser{Email: "dana@example.com"})
	keep, _ := s.CreateUser(NewUser{Email: "lee@example.com"})
	_, err := s.CreateAddress(NewAddress{UserID: u.ID, Type: users.AddressShipping, City: "Lyon"})
	require.NoError(t, err)
	other, err := s.CreateAddress(NewAddress{UserID: keep.ID, Type: users.AddressShipping, City: "Turin"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(u.ID))
	_, ok := s.GetUser(u.ID)
	assert.False(t, ok)
	assert.Empty(t, s.ListAddresses(u.ID))
	assert.Equal(t, []users.Address{other}, s.ListAddresses(keep.ID))
	assert.ErrorIs(t, s.DeleteUser(u.ID), ErrNotFound)
}
