package store

import (
	"strings"

	"vinyl-api/internal/domain/market"
	"vinyl-api/internal/types"

	"github.com/shopspring/decimal"
)

type NewListing struct {
	VinylID      int
	Status       market.ListingStatus
	Price        decimal.Decimal
	Currency     string
	InitialStock int
}

type ListingPatch struct {
	VinylID  types.Optional[int]
	Status   types.Optional[market.ListingStatus]
	Price    types.Optional[decimal.Decimal]
	Currency types.Optional[string]
}

// ListingFilter fields are AND-combined. Artist and Label are matched
// against the listed vinyl using the id-or-name convention.
type ListingFilter struct {
	Status  market.ListingStatus
	VinylID *int
	Artist  string
	Label   string
}

// CreateListing stores the listing together with its inventory record
// (total = InitialStock, reserved = 0). Status defaults to DRAFT and
// currency to EUR.
func (s *Store) CreateListing(in NewListing) (market.Listing, market.Inventory, error) {
	if in.Status == "" {
		in.Status = market.StatusDraft
	}
	if !in.Status.Valid() {
		return market.Listing{}, market.Inventory{}, invalid("unknown listing status %q", in.Status)
	}
	if !in.Price.IsPositive() {
		return market.Listing{}, market.Inventory{}, invalid("price must be positive")
	}
	if in.InitialStock < 0 {
		return market.Listing{}, market.Inventory{}, invalid("initial stock must not be negative")
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = market.DefaultCurrency
	}
	if len(currency) != 3 {
		return market.Listing{}, market.Inventory{}, invalid("currency must be a three-letter code")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.st.vinyls[in.VinylID]; !ok {
		return market.Listing{}, market.Inventory{}, invalid("vinyl %d does not exist", in.VinylID)
	}

	now := s.stamp()
	l := market.Listing{
		ID:        s.st.listingSeq.next(),
		VinylID:   in.VinylID,
		Status:    in.Status,
		Price:     in.Price,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	inv := market.Inventory{
		ID:            s.st.invSeq.next(),
		ListingID:     l.ID,
		TotalQuantity: in.InitialStock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.st.listings[l.ID] = l
	s.st.inventory[inv.ID] = inv
	return l, inv, nil
}

func (s *Store) GetListing(id int) (market.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.st.listings[id]
	return l, ok
}

func (s *Store) ListListings(f ListingFilter) []market.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.st.listings, s.st.listingMatcher(f))
}

func (s *Store) UpdateListing(id int, p ListingPatch) (market.Listing, error) {
	if p.Status.Set && !p.Status.Value.Valid() {
		return market.Listing{}, invalid("unknown listing status %q", p.Status.Value)
	}
	if p.Price.Set && !p.Price.Value.IsPositive() {
		return market.Listing{}, invalid("price must be positive")
	}
	currency := strings.ToUpper(strings.TrimSpace(p.Currency.Value))
	if p.Currency.Set && len(currency) != 3 {
		return market.Listing{}, invalid("currency must be a three-letter code")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.st.listings[id]
	if !ok {
		return market.Listing{}, notFound("listing", id)
	}
	if p.VinylID.Set {
		if _, ok := s.st.vinyls[p.VinylID.Value]; !ok {
			return market.Listing{}, invalid("vinyl %d does not exist", p.VinylID.Value)
		}
	}
	l.VinylID = p.VinylID.Or(l.VinylID)
	l.Status = p.Status.Or(l.Status)
	l.Price = p.Price.Or(l.Price)
	if p.Currency.Set {
		l.Currency = currency
	}
	l.UpdatedAt = s.stamp()
	s.st.listings[id] = l
	return l, nil
}

// DeleteListing removes the listing and its inventory record.
func (s *Store) DeleteListing(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.st.listings[id]; !ok {
		return notFound("listing", id)
	}
	delete(s.st.listings, id)
	for iid, inv := range s.st.inventory {
		if inv.ListingID == id {
			delete(s.st.inventory, iid)
		}
	}
	return nil
}

func (st *state) listingMatcher(f ListingFilter) func(market.Listing) bool {
	artist, byArtist := newRefMatcher(f.Artist)
	label, byLabel := newRefMatcher(f.Label)

	return func(l market.Listing) bool {
		if f.Status != "" && l.Status != f.Status {
			return false
		}
		if f.VinylID != nil && l.VinylID != *f.VinylID {
			return false
		}
		if !byArtist && !byLabel {
			return true
		}
		v, ok := st.vinyls[l.VinylID]
		if !ok {
			return false
		}
		if byLabel {
			lb, _ := st.labels.get(v.LabelID)
			if !label.match(v.LabelID, lb.Name) {
				return false
			}
		}
		if byArtist && !anyArtist(st.artistsForVinyl(v.ID), artist) {
			return false
		}
		return true
	}
}
