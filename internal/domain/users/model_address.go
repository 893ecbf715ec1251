package users

import "vinyl-api/internal/types"

type AddressType string

const (
	AddressShipping AddressType = "SHIPPING"
	AddressBilling  AddressType = "BILLING"
)

func (t AddressType) Valid() bool {
	return t == AddressShipping || t == AddressBilling
}

// Address belongs to exactly one user. At most one address per (UserID, Type)
// has IsDefault set.
type Address struct {
	ID         int             `json:"id"`
	UserID     int             `json:"userId"`
	Type       AddressType     `json:"type"`
	FullName   string          `json:"fullName"`
	Street     string          `json:"street"`
	City       string          `json:"city"`
	PostalCode string          `json:"postalCode"`
	Country    string          `json:"country"`
	IsDefault  bool            `json:"isDefault"`
	CreatedAt  types.Timestamp `json:"createdAt"`
	UpdatedAt  types.Timestamp `json:"updatedAt"`
}
