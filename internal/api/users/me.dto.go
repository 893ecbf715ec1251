package users

import (
	"vinyl-api/internal/domain/users"
	"vinyl-api/internal/types"
)

type MeResponse struct {
	User     UserDTO     `json:"user"`
	Defaults DefaultsDTO `json:"defaultAddresses"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID        int             `json:"id"`
	Email     string          `json:"email"`
	Role      users.Role      `json:"role"`
	Active    bool            `json:"active"`
	CreatedAt types.Timestamp `json:"createdAt"`
	UpdatedAt types.Timestamp `json:"updatedAt"`
}

/* ---------- ADDRESSES ---------- */

type DefaultsDTO struct {
	Shipping *users.Address `json:"shipping"`
	Billing  *users.Address `json:"billing"`
}
