package users

import (
	"vinyl-api/internal/types"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleStaff    Role = "STAFF"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           int             `json:"id"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Role         Role            `json:"role"`
	Active       bool            `json:"active"`
	CreatedAt    types.Timestamp `json:"createdAt"`
	UpdatedAt    types.Timestamp `json:"updatedAt"`
}
