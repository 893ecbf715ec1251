package store

import (
	"fmt"

	"vinyl-api/internal/domain/catalog"
	"vinyl-api/internal/domain/market"
)

// VinylDetail is a vinyl joined with its label and linked artists/genres,
// read under a single lock.
type VinylDetail struct {
	Vinyl   catalog.Vinyl
	Label   catalog.Label
	Artists []catalog.Artist
	Genres  []catalog.Genre
}

// Complete reports whether the vinyl has at least one artist and one genre.
// Incomplete vinyls are left out of every enriched response.
func (d VinylDetail) Complete() bool {
	return len(d.Artists) > 0 && len(d.Genres) > 0
}

type ListingDetail struct {
	Listing   market.Listing
	Inventory market.Inventory
	Vinyl     VinylDetail
}

func (s *Store) VinylDetail(id int) (VinylDetail, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.st.vinyls[id]
	if !ok {
		return VinylDetail{}, false
	}
	return s.st.vinylDetail(v), true
}

func (s *Store) VinylDetails(f VinylFilter) []VinylDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := sortedValues(s.st.vinyls, s.st.vinylMatcher(f))
	out := make([]VinylDetail, 0, len(rows))
	for _, v := range rows {
		out = append(out, s.st.vinylDetail(v))
	}
	return out
}

func (s *Store) ListingDetail(id int) (ListingDetail, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.st.listings[id]
	if !ok {
		return ListingDetail{}, false
	}
	return s.st.listingDetail(l), true
}

func (s *Store) ListingDetails(f ListingFilter) []ListingDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := sortedValues(s.st.listings, s.st.listingMatcher(f))
	out := make([]ListingDetail, 0, len(rows))
	for _, l := range rows {
		out = append(out, s.st.listingDetail(l))
	}
	return out
}

// vinylDetail panics when the vinyl points at a label that no longer
// exists: delete guards make that unreachable through the API, so it can
// only be a broken invariant.
func (st *state) vinylDetail(v catalog.Vinyl) VinylDetail {
	label, ok := st.labels.get(v.LabelID)
	if !ok {
		panic(fmt.Sprintf("integrity: vinyl %d references missing label %d", v.ID, v.LabelID))
	}
	return VinylDetail{
		Vinyl:   v,
		Label:   label,
		Artists: st.artistsForVinyl(v.ID),
		Genres:  st.genresForVinyl(v.ID),
	}
}

// listingDetail panics on a missing vinyl or inventory record for the same
// reason as vinylDetail.
func (st *state) listingDetail(l market.Listing) ListingDetail {
	v, ok := st.vinyls[l.VinylID]
	if !ok {
		panic(fmt.Sprintf("integrity: listing %d references missing vinyl %d", l.ID, l.VinylID))
	}
	inv, ok := st.inventoryForListing(l.ID)
	if !ok {
		panic(fmt.Sprintf("integrity: listing %d has no inventory record", l.ID))
	}
	return ListingDetail{Listing: l, Inventory: inv, Vinyl: st.vinylDetail(v)}
}
