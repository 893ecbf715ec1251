// Package store is the in-memory entity store. It owns every collection,
// every id sequence and the association tables, and it is the only place
// that mutates them.
//
// All operations take a single store-wide lock: reads share it, writes hold
// it exclusively, so composite writes (listing + inventory, default address
// switch) are observed atomically.
package store

import (
	"fmt"
	"sync"
	"time"

	"vinyl-api/internal/domain/catalog"
	"vinyl-api/internal/domain/market"
	"vinyl-api/internal/domain/users"
	"vinyl-api/internal/types"
)

// Loader populates a freshly created store, typically with the bootstrap seed.
type Loader func(s *Store) error

type state struct {
	userSeq    sequence
	addressSeq sequence
	vinylSeq   sequence
	listingSeq sequence
	invSeq     sequence

	users     map[int]users.User
	addresses map[int]users.Address

	artists *namedTable[catalog.Artist]
	genres  *namedTable[catalog.Genre]
	labels  *namedTable[catalog.Label]

	vinyls       map[int]catalog.Vinyl
	vinylArtists map[catalog.VinylArtist]struct{}
	vinylGenres  map[catalog.VinylGenre]struct{}

	listings  map[int]market.Listing
	inventory map[int]market.Inventory
}

func newState() *state {
	return &state{
		users:     map[int]users.User{},
		addresses: map[int]users.Address{},
		artists: newNamedTable("artist",
			func(a catalog.Artist) string { return a.Name },
			func(id int, name string) catalog.Artist { return catalog.Artist{ID: id, Name: name} }),
		genres: newNamedTable("genre",
			func(g catalog.Genre) string { return g.Name },
			func(id int, name string) catalog.Genre { return catalog.Genre{ID: id, Name: name} }),
		labels: newNamedTable("label",
			func(l catalog.Label) string { return l.Name },
			func(id int, name string) catalog.Label { return catalog.Label{ID: id, Name: name} }),
		vinyls:       map[int]catalog.Vinyl{},
		vinylArtists: map[catalog.VinylArtist]struct{}{},
		vinylGenres:  map[catalog.VinylGenre]struct{}{},
		listings:     map[int]market.Listing{},
		inventory:    map[int]market.Inventory{},
	}
}

type Store struct {
	mu        sync.RWMutex
	st        *state
	now       func() time.Time
	createdAt time.Time
}

type Option func(*Store)

// WithClock replaces time.Now for timestamps and the creation instant.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(opts ...Option) *Store {
	s := &Store{st: newState(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.createdAt = s.now()
	return s
}

// CreatedAt is the instant the store was constructed. Reset does not move it.
func (s *Store) CreatedAt() time.Time {
	return s.createdAt
}

// Now is the store clock.
func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) stamp() types.Timestamp {
	return types.NewTimestamp(s.now())
}

// Reset builds a fresh state, runs load against it and swaps it in. Readers
// see either the old state or the fully loaded new one, never a mix. All id
// sequences restart at 1. On loader failure the current state is kept.
func (s *Store) Reset(load Loader) error {
	fresh := &Store{st: newState(), now: s.now, createdAt: s.createdAt}
	if load != nil {
		if err := load(fresh); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}

	fresh.mu.Lock()
	next := fresh.st
	fresh.mu.Unlock()

	s.mu.Lock()
	s.st = next
	s.mu.Unlock()
	return nil
}

type Stats struct {
	Users     int `json:"users"`
	Addresses int `json:"addresses"`
	Artists   int `json:"artists"`
	Genres    int `json:"genres"`
	Labels    int `json:"labels"`
	Vinyls    int `json:"vinyls"`
	Listings  int `json:"listings"`
	Inventory int `json:"inventory"`
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Users:     len(s.st.users),
		Addresses: len(s.st.addresses),
		Artists:   len(s.st.artists.rows),
		Genres:    len(s.st.genres.rows),
		Labels:    len(s.st.labels.rows),
		Vinyls:    len(s.st.vinyls),
		Listings:  len(s.st.listings),
		Inventory: len(s.st.inventory),
	}
}
