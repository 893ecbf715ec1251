package market

import (
	"encoding/json"

	"vinyl-api/internal/types"
)

// Inventory tracks stock for one listing. 0 <= ReservedQuantity <= TotalQuantity.
type Inventory struct {
	ID               int             `json:"id"`
	ListingID        int             `json:"listingId"`
	TotalQuantity    int             `json:"totalQuantity"`
	ReservedQuantity int             `json:"reservedQuantity"`
	CreatedAt        types.Timestamp `json:"createdAt"`
	UpdatedAt        types.Timestamp `json:"updatedAt"`
}

// Available is never stored; it is always derived from the two source fields.
func (i Inventory) Available() int {
	return AvailableQuantity(i.TotalQuantity, i.ReservedQuantity)
}

func AvailableQuantity(total, reserved int) int {
	return total - reserved
}

// MarshalJSON adds availableQuantity to the stored fields.
func (i Inventory) MarshalJSON() ([]byte, error) {
	type stored Inventory
	return json.Marshal(struct {
		stored
		AvailableQuantity int `json:"availableQuantity"`
	}{stored(i), i.Available()})
}
