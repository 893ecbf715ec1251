package database

import (
	"vinyl-api/internal/domain/users"
	"vinyl-api/internal/store"
)

// SeedUser is a fixed account present after every bootstrap.
type SeedUser struct {
	Email    string
	Password string
	Role     users.Role
}

var SeedAccounts = []SeedUser{
	{Email: "admin@vinyl.local", Password: "admin123", Role: users.RoleAdmin},
	{Email: "staff@vinyl.local", Password: "staff123", Role: users.RoleStaff},
}

func SeedUsers(s *store.Store, hasher PasswordHasher) error {
	for _, su := range SeedAccounts {
		hash, err := hasher.Hash(su.Password)
		if err != nil {
			return err
		}
		if _, err := s.CreateUser(store.NewUser{
			Email:        su.Email,
			PasswordHash: hash,
			Role:         su.Role,
			Active:       true,
		}); err != nil {
			return err
		}
	}
	return nil
}
