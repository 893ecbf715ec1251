package store

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vinyl-api/internal/domain/catalog"
	"vinyl-api/internal/types"
)

func TestCreateVinyl_LinksArtistsAndGenres(t *testing.T) {
	s, _ := newTestStore(t)
	f := seedCatalog(t, s)
	idm, _, _ := s.CreateGenre("IDM")

	v, err := s.CreateVinyl(NewVinyl{
		Title:     "Collab",
		ArtistIDs: []int{f.other.ID, f.artist.ID, f.other.ID},
		LabelID:   f.label.ID,
		GenreIDs:  []int{idm.ID, f.genre.ID},
		Year:      2001,
	})
	require.NoError(t, err)
	assert.Equal(t, f.other.ID, v.ArtistID, "first artist is primary")
	assert.Equal(t, idm.ID, v.GenreID, "first genre is primary")

	got, ok := s.GetVinyl(v.ID)
	require.True(t, ok)
	assert.Equal(t, v, got)

	artists := s.ArtistsForVinyl(v.ID)
	require.Len(t, artists, 2)
	assert.Equal(t, f.artist.ID, artists[0].ID, "ordered by id ascending")
	assert.Equal(t, f.other.ID, artists[1].ID)

	genres := s.GenresForVinyl(v.ID)
	require.Len(t, genres, 2)
	assert.Equal(t, f.genre.ID, genres[0].ID)
}

func TestCreateVinyl_RejectsUnknownReferences(t *testing.T) {
	s, _ := newTestStore(t)
	f := seedCatalog(t, s)

	_, err := s.CreateVinyl(NewVinyl{Title: "x", ArtistIDs: []int{f.artist.ID}, LabelID: 99, GenreIDs: []int{f.genre.ID}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateVinyl(NewVinyl{Title: "x", ArtistIDs: []int{99}, LabelID: f.label.ID, GenreIDs: []int{f.genre.ID}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateVinyl(NewVinyl{Title: "x", ArtistIDs: nil, LabelID: f.label.ID, GenreIDs: []int{f.genre.ID}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateVinyl(NewVinyl{Title: " ", ArtistIDs: []int{f.artist.ID}, LabelID: f.label.ID, GenreIDs: []int{f.genre.ID}})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, 1, s.Stats().Vinyls)
}

func TestUpdateVinyl_EmptyPatchOnlyRefreshesUpdatedAt(t *testing.T) {
	s, clock := newTestStore(t)
	f := seedCatalog(t, s)

	clock.Advance(90 * time.Second)
	got, err := s.UpdateVinyl(f.vinyl.ID, VinylPatch{})
	require.NoError(t, err)

	want := f.vinyl
	want.UpdatedAt = types.NewTimestamp(clock.Now())
	assert.Equal(t, want, got)
	assert.True(t, got.UpdatedAt.After(f.vinyl.UpdatedAt.Time))
	assert.Equal(t, f.vinyl.CreatedAt, got.CreatedAt)
}

func TestUpdateVinyl_MergesProvidedFields(t *testing.T) {
	s, _ := newTestStore(t)
	f := seedCatalog(t, s)

	got, err := s.UpdateVinyl(f.vinyl.ID, VinylPatch{
		Year:      types.Some(0),
		ArtistIDs: types.Some([]int{f.other.ID}),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Year, "explicit zero overwrites")
	assert.Equal(t, f.vinyl.Title, got.Title)
	assert.Equal(t, f.other.ID, got.ArtistID)

	artists := s.ArtistsForVinyl(f.vinyl.ID)
	require.Len(t, artists, 1)
	assert.Equal(t, f.other.ID, artists[0].ID)
	assert.False(t, s.ArtistHasVinyls(f.artist.ID))

	_, err = s.UpdateVinyl(f.vinyl.ID, VinylPatch{LabelID: types.Some(42)})
	assert.ErrorIs(t, err, ErrValidation)
	unchanged, _ := s.GetVinyl(f.vinyl.ID)
	assert.Equal(t, f.label.ID, unchanged.LabelID)

	_, err = s.UpdateVinyl(404, VinylPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteVinyl_CascadesGenreLinksButNotArtistLinks(t *testing.T) {
	s, _ := newTestStore(t)
	f := seedCatalog(t, s)

	require.NoError(t, s.DeleteVinyl(f.vinyl.ID))

	_, ok := s.GetVinyl(f.vinyl.ID)
	assert.False(t, ok)
	assert.Empty(t, s.GenresForVinyl(f.vinyl.ID))

	// artist links survive the delete and keep guarding the artist
	assert.Len(t, s.ArtistsForVinyl(f.vinyl.ID), 1)
	assert.True(t, s.ArtistHasVinyls(f.artist.ID))

	assert.ErrorIs(t, s.DeleteVinyl(f.vinyl.ID), ErrNotFound)
}

func TestLinks_InsertOverwriteAndUnlink(t *testing.T) {
	s, _ := newTestStore(t)
	f := seedCatalog(t, s)

	require.NoError(t, s.LinkVinylArtist(f.vinyl.ID, f.other.ID))
	require.NoError(t, s.LinkVinylArtist(f.vinyl.ID, f.other.ID))
	assert.Len(t, s.ArtistsForVinyl(f.vinyl.ID), 2)

	assert.ErrorIs(t, s.LinkVinylArtist(f.vinyl.ID, 77), ErrNotFound)
	assert.ErrorIs(t, s.LinkVinylArtist(77, f.other.ID), ErrNotFound)

	require.NoError(t, s.UnlinkVinylArtist(f.vinyl.ID, f.artist.ID))
	v, _ := s.GetVinyl(f.vinyl.ID)
	assert.Equal(t, f.other.ID, v.ArtistID, "primary moves to the remaining artist")

	require.NoError(t, s.UnlinkVinylGenre(f.vinyl.ID, f.genre.ID))
	v, _ = s.GetVinyl(f.vinyl.ID)
	assert.Equal(t, 0, v.GenreID)
	assert.ErrorIs(t, s.UnlinkVinylGenre(f.vinyl.ID, f.genre.ID), ErrNotFound)

	detail, ok := s.VinylDetail(f.vinyl.ID)
	require.True(t, ok)
	assert.False(t, detail.Complete())

	require.NoError(t, s.LinkVinylGenre(f.vinyl.ID, f.genre.ID))
	v, _ = s.GetVinyl(f.vinyl.ID)
	assert.Equal(t, f.genre.ID, v.GenreID)
}

func TestListVinyls_Filters(t *testing.T) {
	s, _ := newTestStore(t)
	f := seedCatalog(t, s)
	rock, _, _ := s.CreateGenre("Rock")
	sub, _, _ := s.CreateLabel("Sub Pop")
	nirvana, _, _ := s.CreateArtist("Nirvana")
	bleach, err := s.CreateVinyl(NewVinyl{
		Title: "Bleach", ArtistIDs: []int{nirvana.ID}, LabelID: sub.ID, GenreIDs: []int{rock.ID}, Year: 1989,
	})
	require.NoError(t, err)
	geogaddi, err := s.CreateVinyl(NewVinyl{
		Title: "Geogaddi", ArtistIDs: []int{f.artist.ID}, LabelID: f.label.ID, GenreIDs: []int{f.genre.ID}, Year: 2002,
	})
	require.NoError(t, err)

	ids := func(list []catalog.Vinyl) []int {
		out := []int{}
		for _, v := range list {
			out = append(out, v.ID)
		}
		return out
	}

	assert.Equal(t, []int{f.vinyl.ID, bleach.ID, geogaddi.ID}, ids(s.ListVinyls(VinylFilter{})))
	assert.Equal(t, []int{f.vinyl.ID, geogaddi.ID}, ids(s.ListVinyls(VinylFilter{Artist: "boards"})))
	assert.Equal(t, []int{bleach.ID}, ids(s.ListVinyls(VinylFilter{Artist: itoa(nirvana.ID)})))
	assert.Equal(t, []int{bleach.ID}, ids(s.ListVinyls(VinylFilter{Label: "sub"})))
	assert.Equal(t, []int{f.vinyl.ID, geogaddi.ID}, ids(s.ListVinyls(VinylFilter{Label: itoa(f.label.ID)})))
	assert.Equal(t, []int{bleach.ID}, ids(s.ListVinyls(VinylFilter{Genre: "ROCK"})))
	assert.Equal(t, []int{geogaddi.ID}, ids(s.ListVinyls(VinylFilter{Title: "gaddi"})))

	year := 2002
	assert.Equal(t, []int{geogaddi.ID}, ids(s.ListVinyls(VinylFilter{Year: &year, Artist: "canada"})))
	assert.Empty(t, ids(s.ListVinyls(VinylFilter{Year: &year, Label: "sub"})), "filters are AND-combined")
}

func TestVinylDetail_PanicsOnBrokenLabelReference(t *testing.T) {
	s, _ := newTestStore(t)
	f := seedCatalog(t, s)

	// skipping the LabelHasVinyls guard breaks the invariant
	require.NoError(t, s.DeleteLabel(f.label.ID))
	assert.Panics(t, func() { s.VinylDetail(f.vinyl.ID) })
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func TestUpdateVinyl_RejectsZeroValues(t *testing.T) {
	s, _ := newTestStore(t)
	f := seedCatalog(t, s)

	patches := []VinylPatch{
		{Year: types.Some(0)},
		{Year: types.Some(2101)},
		{ConditionMedia: types.Some("")},
		{ConditionSleeve: types.Some("mint")},
	}
	for _, p := range patches {
		_, err := s.UpdateVinyl(f.vinyl.ID, p)
		assert.ErrorIs(t, err, ErrValidation)
	}

	got, _ := s.GetVinyl(f.vinyl.ID)
	assert.Equal(t, f.vinyl, got)
}
