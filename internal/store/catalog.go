package store

import (
	"vinyl-api/internal/domain/catalog"
	"vinyl-api/internal/types"
)

// NamePatch is the update body for artists, genres and labels.
type NamePatch struct {
	Name types.Optional[string]
}

// ------------------------------
// artists
// ------------------------------

// CreateArtist returns the existing artist when one already carries the same
// name ignoring case; created reports whether a new record was made.
func (s *Store) CreateArtist(name string) (a catalog.Artist, created bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.artists.create(name)
}

func (s *Store) GetArtist(id int) (catalog.Artist, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.artists.get(id)
}

func (s *Store) FindArtistByName(name string) (catalog.Artist, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.artists.find(name)
}

func (s *Store) ListArtists(nameContains string) []catalog.Artist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.artists.list(nameContains)
}

func (s *Store) UpdateArtist(id int, p NamePatch) (catalog.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.st.artists.get(id)
	if !ok {
		return catalog.Artist{}, notFound("artist", id)
	}
	if !p.Name.Set {
		return a, nil
	}
	return s.st.artists.rename(id, p.Name.Value)
}

// DeleteArtist removes the artist unconditionally; callers check
// ArtistHasVinyls first.
func (s *Store) DeleteArtist(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.artists.remove(id)
}

// ArtistHasVinyls reports whether any vinyl-artist link references id.
func (s *Store) ArtistHasVinyls(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for link := range s.st.vinylArtists {
		if link.ArtistID == id {
			return true
		}
	}
	return false
}

// ------------------------------
// genres
// ------------------------------

func (s *Store) CreateGenre(name string) (g catalog.Genre, created bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.genres.create(name)
}

func (s *Store) GetGenre(id int) (catalog.Genre, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.genres.get(id)
}

func (s *Store) FindGenreByName(name string) (catalog.Genre, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.genres.find(name)
}

func (s *Store) ListGenres(nameContains string) []catalog.Genre {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.genres.list(nameContains)
}

func (s *Store) UpdateGenre(id int, p NamePatch) (catalog.Genre, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.st.genres.get(id)
	if !ok {
		return catalog.Genre{}, notFound("genre", id)
	}
	if !p.Name.Set {
		return g, nil
	}
	return s.st.genres.rename(id, p.Name.Value)
}

func (s *Store) DeleteGenre(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.genres.remove(id)
}

// GenreHasVinyls reports whether any vinyl-genre link references id.
func (s *Store) GenreHasVinyls(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for link := range s.st.vinylGenres {
		if link.GenreID == id {
			return true
		}
	}
	return false
}

// ------------------------------
// labels
// ------------------------------

func (s *Store) CreateLabel(name string) (l catalog.Label, created bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.labels.create(name)
}

func (s *Store) GetLabel(id int) (catalog.Label, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.labels.get(id)
}

func (s *Store) FindLabelByName(name string) (catalog.Label, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.labels.find(name)
}

func (s *Store) ListLabels(nameContains string) []catalog.Label {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.labels.list(nameContains)
}

func (s *Store) UpdateLabel(id int, p NamePatch) (catalog.Label, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.st.labels.get(id)
	if !ok {
		return catalog.Label{}, notFound("label", id)
	}
	if !p.Name.Set {
		return l, nil
	}
	return s.st.labels.rename(id, p.Name.Value)
}

func (s *Store) DeleteLabel(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.labels.remove(id)
}

// LabelHasVinyls reports whether any vinyl points at label id.
func (s *Store) LabelHasVinyls(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.st.vinyls {
		if v.LabelID == id {
			return true
		}
	}
	return false
}
