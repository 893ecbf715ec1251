package store

import (
	"sort"

	"vinyl-api/internal/domain/catalog"
)

// LinkVinylArtist inserts (or overwrites) the (vinylID, artistID) link.
func (s *Store) LinkVinylArtist(vinylID, artistID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.st.vinyls[vinylID]
	if !ok {
		return notFound("vinyl", vinylID)
	}
	if _, ok := s.st.artists.get(artistID); !ok {
		return notFound("artist", artistID)
	}
	s.st.vinylArtists[catalog.VinylArtist{VinylID: vinylID, ArtistID: artistID}] = struct{}{}
	if v.ArtistID == 0 {
		v.ArtistID = artistID
		v.UpdatedAt = s.stamp()
		s.st.vinyls[vinylID] = v
	}
	return nil
}

// UnlinkVinylArtist removes the link. When it was the primary artist the
// lowest remaining linked artist takes over (0 when none is left).
func (s *Store) UnlinkVinylArtist(vinylID, artistID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := catalog.VinylArtist{VinylID: vinylID, ArtistID: artistID}
	if _, ok := s.st.vinylArtists[key]; !ok {
		return notFound("vinyl artist link", artistID)
	}
	delete(s.st.vinylArtists, key)

	if v, ok := s.st.vinyls[vinylID]; ok && v.ArtistID == artistID {
		v.ArtistID = 0
		if rest := s.st.artistsForVinyl(vinylID); len(rest) > 0 {
			v.ArtistID = rest[0].ID
		}
		v.UpdatedAt = s.stamp()
		s.st.vinyls[vinylID] = v
	}
	return nil
}

// LinkVinylGenre inserts (or overwrites) the (vinylID, genreID) link.
func (s *Store) LinkVinylGenre(vinylID, genreID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.st.vinyls[vinylID]
	if !ok {
		return notFound("vinyl", vinylID)
	}
	if _, ok := s.st.genres.get(genreID); !ok {
		return notFound("genre", genreID)
	}
	s.st.vinylGenres[catalog.VinylGenre{VinylID: vinylID, GenreID: genreID}] = struct{}{}
	if v.GenreID == 0 {
		v.GenreID = genreID
		v.UpdatedAt = s.stamp()
		s.st.vinyls[vinylID] = v
	}
	return nil
}

func (s *Store) UnlinkVinylGenre(vinylID, genreID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := catalog.VinylGenre{VinylID: vinylID, GenreID: genreID}
	if _, ok := s.st.vinylGenres[key]; !ok {
		return notFound("vinyl genre link", genreID)
	}
	delete(s.st.vinylGenres, key)

	if v, ok := s.st.vinyls[vinylID]; ok && v.GenreID == genreID {
		v.GenreID = 0
		if rest := s.st.genresForVinyl(vinylID); len(rest) > 0 {
			v.GenreID = rest[0].ID
		}
		v.UpdatedAt = s.stamp()
		s.st.vinyls[vinylID] = v
	}
	return nil
}

// ArtistsForVinyl joins the link table against artists, id ascending. An
// empty result means the vinyl is incomplete.
func (s *Store) ArtistsForVinyl(vinylID int) []catalog.Artist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.artistsForVinyl(vinylID)
}

// GenresForVinyl joins the link table against genres, id ascending.
func (s *Store) GenresForVinyl(vinylID int) []catalog.Genre {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.genresForVinyl(vinylID)
}

func (st *state) artistsForVinyl(vinylID int) []catalog.Artist {
	var out []catalog.Artist
	for link := range st.vinylArtists {
		if link.VinylID != vinylID {
			continue
		}
		if a, ok := st.artists.get(link.ArtistID); ok {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (st *state) genresForVinyl(vinylID int) []catalog.Genre {
	var out []catalog.Genre
	for link := range st.vinylGenres {
		if link.VinylID != vinylID {
			continue
		}
		if g, ok := st.genres.get(link.GenreID); ok {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
