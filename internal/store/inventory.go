package store

import (
	"vinyl-api/internal/domain/market"
	"vinyl-api/internal/types"
)

type InventoryPatch struct {
	TotalQuantity    types.Optional[int]
	ReservedQuantity types.Optional[int]
}

func (s *Store) GetInventory(id int) (market.Inventory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.st.inventory[id]
	return inv, ok
}

func (s *Store) InventoryForListing(listingID int) (market.Inventory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.inventoryForListing(listingID)
}

func (s *Store) ListInventory() []market.Inventory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.st.inventory, nil)
}

// UpdateInventory merges p into the record. Negative quantities are a
// validation error; a result with reserved > total is a conflict and leaves
// the record untouched.
func (s *Store) UpdateInventory(id int, p InventoryPatch) (market.Inventory, error) {
	if p.TotalQuantity.Set && p.TotalQuantity.Value < 0 {
		return market.Inventory{}, invalid("total quantity must not be negative")
	}
	if p.ReservedQuantity.Set && p.ReservedQuantity.Value < 0 {
		return market.Inventory{}, invalid("reserved quantity must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.st.inventory[id]
	if !ok {
		return market.Inventory{}, notFound("inventory", id)
	}
	total := p.TotalQuantity.Or(inv.TotalQuantity)
	reserved := p.ReservedQuantity.Or(inv.ReservedQuantity)
	if reserved > total {
		if p.ReservedQuantity.Set {
			return market.Inventory{}, conflict("reserved quantity %d exceeds total quantity %d", reserved, total)
		}
		return market.Inventory{}, conflict("total quantity %d is below reserved quantity %d", total, reserved)
	}
	inv.TotalQuantity = total
	inv.ReservedQuantity = reserved
	inv.UpdatedAt = s.stamp()
	s.st.inventory[id] = inv
	return inv, nil
}

func (st *state) inventoryForListing(listingID int) (market.Inventory, bool) {
	for _, inv := range st.inventory {
		if inv.ListingID == listingID {
			return inv, true
		}
	}
	return market.Inventory{}, false
}
