package store

import (
	"strings"

	"vinyl-api/internal/domain/users"
	"vinyl-api/internal/types"
)

type NewUser struct {
	Email        string
	PasswordHash string
	Role         users.Role
	Active       bool
}

type UserPatch struct {
	Email        types.Optional[string]
	PasswordHash types.Optional[string]
	Role         types.Optional[users.Role]
	Active       types.Optional[bool]
}

// CreateUser does not check email uniqueness; registration and admin
// creation do that through FindUserByEmail.
func (s *Store) CreateUser(in NewUser) (users.User, error) {
	if strings.TrimSpace(in.Email) == "" {
		return users.User{}, invalid("email must not be blank")
	}
	if in.Role == "" {
		in.Role = users.RoleCustomer
	}
	if !in.Role.Valid() {
		return users.User{}, invalid("unknown role %q", in.Role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.stamp()
	u := users.User{
		ID:           s.st.userSeq.next(),
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		Role:         in.Role,
		Active:       in.Active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.st.users[u.ID] = u
	return u, nil
}

func (s *Store) GetUser(id int) (users.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.st.users[id]
	return u, ok
}

// FindUserByEmail matches the email exactly as stored.
func (s *Store) FindUserByEmail(email string) (users.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range sortedValues(s.st.users, nil) {
		if u.Email == email {
			return u, true
		}
	}
	return users.User{}, false
}

func (s *Store) ListUsers() []users.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.st.users, nil)
}

func (s *Store) UpdateUser(id int, p UserPatch) (users.User, error) {
	if p.Email.Set && strings.TrimSpace(p.Email.Value) == "" {
		return users.User{}, invalid("email must not be blank")
	}
	if p.Role.Set && !p.Role.Value.Valid() {
		return users.User{}, invalid("unknown role %q", p.Role.Value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.st.users[id]
	if !ok {
		return users.User{}, notFound("user", id)
	}
	u.Email = p.Email.Or(u.Email)
	u.PasswordHash = p.PasswordHash.Or(u.PasswordHash)
	u.Role = p.Role.Or(u.Role)
	u.Active = p.Active.Or(u.Active)
	u.UpdatedAt = s.stamp()
	s.st.users[id] = u
	return u, nil
}

// DeleteUser also removes every address the user owns.
func (s *Store) DeleteUser(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.st.users[id]; !ok {
		return notFound("user", id)
	}
	delete(s.st.users, id)
	for aid, a := range s.st.addresses {
		if a.UserID == id {
			delete(s.st.addresses, aid)
		}
	}
	return nil
}
