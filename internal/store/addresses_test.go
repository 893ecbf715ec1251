package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vinyl-api/internal/domain/users"
	"vinyl-api/internal/types"
)

func defaults(s *Store, userID int, typ users.AddressType) []int {
	var ids []int
	for _, a := range s.ListAddresses(userID) {
		if a.Type == typ && a.IsDefault {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

func TestCreateAddress_SingleDefaultPerType(t *testing.T) {
	s, _ := newTestStore(t)
	u, _ := s.CreateUser(NewUser{Email: "dana@example.com"})
	other, _ := s.CreateUser(NewUser{Email: "lee@example.com"})

	first, err := s.CreateAddress(NewAddress{UserID: u.ID, Type: users.AddressShipping, City: "Lyon", IsDefault: true})
	require.NoError(t, err)
	billing, err := s.CreateAddress(NewAddress{UserID: u.ID, Type: users.AddressBilling, City: "Lyon", IsDefault: true})
	require.NoError(t, err)
	foreign, err := s.CreateAddress(NewAddress{UserID: other.ID, Type: users.AddressShipping, City: "Turin", IsDefault: true})
	require.NoError(t, err)

	second, err := s.CreateAddress(NewAddress{UserID: u.ID, Type: users.AddressShipping, City: "Paris", IsDefault: true})
	require.NoError(t, err)

	assert.Equal(t, []int{second.ID}, defaults(s, u.ID, users.AddressShipping))
	assert.Equal(t, []int{billing.ID}, defaults(s, u.ID, users.AddressBilling))
	assert.Equal(t, []int{foreign.ID}, defaults(s, other.ID, users.AddressShipping))

	demoted, _ := s.GetAddress(first.ID)
	assert.False(t, demoted.IsDefault)
}

func TestCreateAddress_Validation(t *testing.T) {
	s, _ := newTestStore(t)
	u, _ := s.CreateUser(NewUser{Email: "dana@example.com"})

	_, err := s.CreateAddress(NewAddress{UserID: u.ID, Type: "HOME"})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = s.CreateAddress(NewAddress{UserID: 99, Type: users.AddressBilling})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAddress_TrimsFields(t *testing.T) {
	s, _ := newTestStore(t)
	u, _ := s.CreateUser(NewUser{Email: "dana@example.com"})

	a, err := s.CreateAddress(NewAddress{UserID: u.ID, Type: users.AddressBilling, FullName: "  Dana Roe ", Country: " FR"})
	require.NoError(t, err)
	assert.Equal(t, "Dana Roe", a.FullName)
	assert.Equal(t, "FR", a.Country)
}

func TestUpdateAddress_PromoteToDefault(t *testing.T) {
	s, _ := newTestStore(t)
	u, _ := s.CreateUser(NewUser{Email: "dana@example.com"})
	first, _ := s.CreateAddress(NewAddress{UserID: u.ID, Type: users.AddressShipping, City: "Lyon", IsDefault: true})
	second, _ := s.CreateAddress(NewAddress{UserID: u.ID, Type: users.AddressShipping, City: "Paris"})

	got, err := s.UpdateAddress(second.ID, AddressPatch{IsDefault: types.Some(true)})
	require.NoError(t, err)
	assert.True(t, got.IsDefault)
	assert.Equal(t, "Paris", got.City)
	assert.Equal(t, []int{second.ID}, defaults(s, u.ID, users.AddressShipping))

	prev, _ := s.GetAddress(first.ID)
	assert.False(t, prev.IsDefault)
}

func TestUpdateAddress_TypeChangeKeepsDefaultUnique(t *testing.T) {
	s, _ := newTestStore(t)
	u, _ := s.CreateUser(NewUser{Email: "dana@example.com"})
	ship, _ := s.CreateAddress(NewAddress{UserID: u.ID, Type: users.AddressShipping, IsDefault: true})
	bill, _ := s.CreateAddress(NewAddress{UserID: u.ID, Type: users.AddressBilling, IsDefault: true})

	_, err := s.UpdateAddress(ship.ID, AddressPatch{Type: types.Some(users.AddressBilling)})
	require.NoError(t, err)
	assert.Equal(t, []int{ship.ID}, defaults(s, u.ID, users.AddressBilling))

	old, _ := s.GetAddress(bill.ID)
	assert.False(t, old.IsDefault)
}

func TestDeleteAddress(t *testing.T) {
	s, _ := newTestStore(t)
	u, _ := s.CreateUser(NewUser{Email: "dana@example.com"})
	a, _ := s.CreateAddress(NewAddress{UserID: u.ID, Type: users.AddressShipping})

	require.NoError(t, s.DeleteAddress(a.ID))
	assert.Empty(t, s.ListAddresses(u.ID))
	assert.ErrorIs(t, s.DeleteAddress(a.ID), ErrNotFound)
}

func TestUpdateAddress_RejectsBlankText(t *testing.T) {
	s, _ := newTestStore(t)
	u, _ := s.CreateUser(NewUser{Email: "dana@example.com"})
	a, err := s.CreateAddress(NewAddress{UserID: u.ID, Type: users.AddressShipping, FullName: "Dana Roe", City: "Lyon"})
	require.NoError(t, err)

	_, err = s.UpdateAddress(a.ID, AddressPatch{FullName: types.Some("")})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = s.UpdateAddress(a.ID, AddressPatch{City: types.Some("   ")})
	assert.ErrorIs(t, err, ErrValidation)

	got, _ := s.GetAddress(a.ID)
	assert.Equal(t, "Dana Roe", got.FullName)
	assert.Equal(t, "Lyon", got.City)
}
