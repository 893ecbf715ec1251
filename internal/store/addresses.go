package store

import (
	"strings"

	"vinyl-api/internal/domain/users"
	"vinyl-api/internal/types"
)

type NewAddress struct {
	UserID     int
	Type       users.AddressType
	FullName   string
	Street     string
	City       string
	PostalCode string
	Country    string
	IsDefault  bool
}

type AddressPatch struct {
	Type       types.Optional[users.AddressType]
	FullName   types.Optional[string]
	Street     types.Optional[string]
	City       types.Optional[string]
	PostalCode types.Optional[string]
	Country    types.Optional[string]
	IsDefault  types.Optional[bool]
}

func (s *Store) CreateAddress(in NewAddress) (users.Address, error) {
	if !in.Type.Valid() {
		return users.Address{}, invalid("unknown address type %q", in.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.st.users[in.UserID]; !ok {
		return users.Address{}, notFound("user", in.UserID)
	}

	now := s.stamp()
	a := users.Address{
		ID:         s.st.addressSeq.next(),
		UserID:     in.UserID,
		Type:       in.Type,
		FullName:   strings.TrimSpace(in.FullName),
		Street:     strings.TrimSpace(in.Street),
		City:       strings.TrimSpace(in.City),
		PostalCode: strings.TrimSpace(in.PostalCode),
		Country:    strings.TrimSpace(in.Country),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.IsDefault {
		s.st.clearDefaultAddress(a.UserID, a.Type, a.ID, now)
		a.IsDefault = true
	}
	s.st.addresses[a.ID] = a
	return a, nil
}

func (s *Store) GetAddress(id int) (users.Address, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.st.addresses[id]
	return a, ok
}

// ListAddresses returns the addresses owned by userID, id ascending.
func (s *Store) ListAddresses(userID int) []users.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.st.addresses, func(a users.Address) bool {
		return a.UserID == userID
	})
}

// UpdateAddress rejects a set text field that is blank after trimming.
func (s *Store) UpdateAddress(id int, p AddressPatch) (users.Address, error) {
	if p.Type.Set && !p.Type.Value.Valid() {
		return users.Address{}, invalid("unknown address type %q", p.Type.Value)
	}
	for _, f := range []struct {
		name  string
		value types.Optional[string]
	}{
		{"fullName", p.FullName},
		{"street", p.Street},
		{"city", p.City},
		{"postalCode", p.PostalCode},
		{"country", p.Country},
	} {
		if f.value.Set && strings.TrimSpace(f.value.Value) == "" {
			return users.Address{}, invalid("%s must not be blank", f.name)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.st.addresses[id]
	if !ok {
		return users.Address{}, notFound("address", id)
	}
	now := s.stamp()
	a.Type = p.Type.Or(a.Type)
	a.FullName = strings.TrimSpace(p.FullName.Or(a.FullName))
	a.Street = strings.TrimSpace(p.Street.Or(a.Street))
	a.City = strings.TrimSpace(p.City.Or(a.City))
	a.PostalCode = strings.TrimSpace(p.PostalCode.Or(a.PostalCode))
	a.Country = strings.TrimSpace(p.Country.Or(a.Country))
	a.IsDefault = p.IsDefault.Or(a.IsDefault)
	a.UpdatedAt = now
	if a.IsDefault {
		// clear the others first, then store this one
		s.st.clearDefaultAddress(a.UserID, a.Type, a.ID, now)
	}
	s.st.addresses[id] = a
	return a, nil
}

func (s *Store) DeleteAddress(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.st.addresses[id]; !ok {
		return notFound("address", id)
	}
	delete(s.st.addresses, id)
	return nil
}

// clearDefaultAddress unsets IsDefault on every address of (userID, typ)
// other than keep.
func (st *state) clearDefaultAddress(userID int, typ users.AddressType, keep int, now types.Timestamp) {
	for id, other := range st.addresses {
		if id == keep || other.UserID != userID || other.Type != typ || !other.IsDefault {
			continue
		}
		other.IsDefault = false
		other.UpdatedAt = now
		st.addresses[id] = other
	}
}
