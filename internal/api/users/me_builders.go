package users

import (
	"vinyl-api/internal/domain/users"
)

func BuildUserDTO(u users.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func BuildUserDTOs(list []users.User) []UserDTO {
	out := make([]UserDTO, 0, len(list))
	for _, u := range list {
		out = append(out, BuildUserDTO(u))
	}
	return out
}

// BuildDefaultsDTO picks the default address of each type, if any.
func BuildDefaultsDTO(addresses []users.Address) DefaultsDTO {
	var d DefaultsDTO
	for i := range addresses {
		a := addresses[i]
		if !a.IsDefault {
			continue
		}
		switch a.Type {
		case users.AddressShipping:
			d.Shipping = &a
		case users.AddressBilling:
			d.Billing = &a
		}
	}
	return d
}
