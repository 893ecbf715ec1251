package store

import (
	"strings"

	"vinyl-api/internal/domain/catalog"
	"vinyl-api/internal/types"
)

// NewVinyl carries every artist and genre of the record. The first id of
// each list becomes the primary artist / genre.
type NewVinyl struct {
	Title           string
	ArtistIDs       []int
	LabelID         int
	GenreIDs        []int
	Year            int
	ConditionMedia  string
	ConditionSleeve string
}

// VinylPatch replaces the artist or genre links wholesale when ArtistIDs or
// GenreIDs is set.
type VinylPatch struct {
	Title           types.Optional[string]
	ArtistIDs       types.Optional[[]int]
	LabelID         types.Optional[int]
	GenreIDs        types.Optional[[]int]
	Year            types.Optional[int]
	ConditionMedia  types.Optional[string]
	ConditionSleeve types.Optional[string]
}

// VinylFilter fields are AND-combined. Artist, Label and Genre follow the
// id-or-name convention of refMatcher; Title is a substring match.
type VinylFilter struct {
	Year   *int
	Artist string
	Label  string
	Genre  string
	Title  string
}

func (s *Store) CreateVinyl(in NewVinyl) (catalog.Vinyl, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return catalog.Vinyl{}, invalid("title must not be blank")
	}
	artistIDs := uniqueIDs(in.ArtistIDs)
	genreIDs := uniqueIDs(in.GenreIDs)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.st.checkVinylRefs(in.LabelID, artistIDs, genreIDs); err != nil {
		return catalog.Vinyl{}, err
	}
	if len(artistIDs) == 0 {
		return catalog.Vinyl{}, invalid("at least one artist is required")
	}
	if len(genreIDs) == 0 {
		return catalog.Vinyl{}, invalid("at least one genre is required")
	}

	now := s.stamp()
	v := catalog.Vinyl{
		ID:              s.st.vinylSeq.next(),
		Title:           title,
		ArtistID:        artistIDs[0],
		LabelID:         in.LabelID,
		GenreID:         genreIDs[0],
		Year:            in.Year,
		ConditionMedia:  in.ConditionMedia,
		ConditionSleeve: in.ConditionSleeve,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.st.vinyls[v.ID] = v
	for _, id := range artistIDs {
		s.st.vinylArtists[catalog.VinylArtist{VinylID: v.ID, ArtistID: id}] = struct{}{}
	}
	for _, id := range genreIDs {
		s.st.vinylGenres[catalog.VinylGenre{VinylID: v.ID, GenreID: id}] = struct{}{}
	}
	return v, nil
}

func (s *Store) GetVinyl(id int) (catalog.Vinyl, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.st.vinyls[id]
	return v, ok
}

func (s *Store) ListVinyls(f VinylFilter) []catalog.Vinyl {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match := s.st.vinylMatcher(f)
	return sortedValues(s.st.vinyls, match)
}

func (s *Store) UpdateVinyl(id int, p VinylPatch) (catalog.Vinyl, error) {
	if p.Title.Set && strings.TrimSpace(p.Title.Value) == "" {
		return catalog.Vinyl{}, invalid("title must not be blank")
	}
	if p.Year.Set && !catalog.ValidYear(p.Year.Value) {
		return catalog.Vinyl{}, invalid("year must be between %d and %d", catalog.MinYear, catalog.MaxYear)
	}
	if p.ConditionMedia.Set && !catalog.ValidCondition(p.ConditionMedia.Value) {
		return catalog.Vinyl{}, invalid("unknown media condition %q", p.ConditionMedia.Value)
	}
	if p.ConditionSleeve.Set && !catalog.ValidCondition(p.ConditionSleeve.Value) {
		return catalog.Vinyl{}, invalid("unknown sleeve condition %q", p.ConditionSleeve.Value)
	}
	var artistIDs, genreIDs []int
	if p.ArtistIDs.Set {
		if artistIDs = uniqueIDs(p.ArtistIDs.Value); len(artistIDs) == 0 {
			return catalog.Vinyl{}, invalid("at least one artist is required")
		}
	}
	if p.GenreIDs.Set {
		if genreIDs = uniqueIDs(p.GenreIDs.Value); len(genreIDs) == 0 {
			return catalog.Vinyl{}, invalid("at least one genre is required")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.st.vinyls[id]
	if !ok {
		return catalog.Vinyl{}, notFound("vinyl", id)
	}
	v.Title = strings.TrimSpace(p.Title.Or(v.Title))
	v.LabelID = p.LabelID.Or(v.LabelID)
	v.Year = p.Year.Or(v.Year)
	v.ConditionMedia = p.ConditionMedia.Or(v.ConditionMedia)
	v.ConditionSleeve = p.ConditionSleeve.Or(v.ConditionSleeve)

	if err := s.st.checkVinylRefs(v.LabelID, artistIDs, genreIDs); err != nil {
		return catalog.Vinyl{}, err
	}
	if p.ArtistIDs.Set {
		for link := range s.st.vinylArtists {
			if link.VinylID == id {
				delete(s.st.vinylArtists, link)
			}
		}
		for _, aid := range artistIDs {
			s.st.vinylArtists[catalog.VinylArtist{VinylID: id, ArtistID: aid}] = struct{}{}
		}
		v.ArtistID = artistIDs[0]
	}
	if p.GenreIDs.Set {
		for link := range s.st.vinylGenres {
			if link.VinylID == id {
				delete(s.st.vinylGenres, link)
			}
		}
		for _, gid := range genreIDs {
			s.st.vinylGenres[catalog.VinylGenre{VinylID: id, GenreID: gid}] = struct{}{}
		}
		v.GenreID = genreIDs[0]
	}
	v.UpdatedAt = s.stamp()
	s.st.vinyls[id] = v
	return v, nil
}

// DeleteVinyl removes the vinyl and its genre links. Artist links are left
// in place: ArtistsForVinyl keeps returning them and ArtistHasVinyls keeps
// counting them. Callers check VinylHasListings first.
func (s *Store) DeleteVinyl(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.st.vinyls[id]; !ok {
		return notFound("vinyl", id)
	}
	delete(s.st.vinyls, id)
	for link := range s.st.vinylGenres {
		if link.VinylID == id {
			delete(s.st.vinylGenres, link)
		}
	}
	return nil
}

// VinylHasListings reports whether any listing references vinyl id.
func (s *Store) VinylHasListings(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.st.listings {
		if l.VinylID == id {
			return true
		}
	}
	return false
}

func (st *state) checkVinylRefs(labelID int, artistIDs, genreIDs []int) error {
	if _, ok := st.labels.get(labelID); !ok {
		return invalid("label %d does not exist", labelID)
	}
	for _, id := range artistIDs {
		if _, ok := st.artists.get(id); !ok {
			return invalid("artist %d does not exist", id)
		}
	}
	for _, id := range genreIDs {
		if _, ok := st.genres.get(id); !ok {
			return invalid("genre %d does not exist", id)
		}
	}
	return nil
}

func (st *state) vinylMatcher(f VinylFilter) func(catalog.Vinyl) bool {
	artist, byArtist := newRefMatcher(f.Artist)
	label, byLabel := newRefMatcher(f.Label)
	genre, byGenre := newRefMatcher(f.Genre)
	title := strings.TrimSpace(f.Title)

	return func(v catalog.Vinyl) bool {
		if f.Year != nil && v.Year != *f.Year {
			return false
		}
		if title != "" && !containsFold(v.Title, title) {
			return false
		}
		if byLabel {
			l, _ := st.labels.get(v.LabelID)
			if !label.match(v.LabelID, l.Name) {
				return false
			}
		}
		if byArtist && !anyArtist(st.artistsForVinyl(v.ID), artist) {
			return false
		}
		if byGenre && !anyGenre(st.genresForVinyl(v.ID), genre) {
			return false
		}
		return true
	}
}

func anyArtist(list []catalog.Artist, m refMatcher) bool {
	for _, a := range list {
		if m.match(a.ID, a.Name) {
			return true
		}
	}
	return false
}

func anyGenre(list []catalog.Genre, m refMatcher) bool {
	for _, g := range list {
		if m.match(g.ID, g.Name) {
			return true
		}
	}
	return false
}

// uniqueIDs drops duplicates, keeping first-seen order.
func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
