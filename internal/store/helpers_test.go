package store

import (
	"testing"
	"time"

	"vinyl-api/internal/domain/catalog"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	return New(WithClock(clock.Now)), clock
}

type fixture struct {
	artist catalog.Artist
	other  catalog.Artist
	genre  catalog.Genre
	label  catalog.Label
	vinyl  catalog.Vinyl
}

func seedCatalog(t *testing.T, s *Store) fixture {
	t.Helper()
	artist, _, err := s.CreateArtist("Boards of Canada")
	require.NoError(t, err)
	other, _, err := s.CreateArtist("Aphex Twin")
	require.NoError(t, err)
	genre, _, err := s.CreateGenre("Electronic")
	require.NoError(t, err)
	label, _, err := s.CreateLabel("Warp")
	require.NoError(t, err)

	vinyl, err := s.CreateVinyl(NewVinyl{
		Title:           "Music Has the Right to Children",
		ArtistIDs:       []int{artist.ID},
		LabelID:         label.ID,
		GenreIDs:        []int{genre.ID},
		Year:            1998,
		ConditionMedia:  catalog.ConditionNearMint,
		ConditionSleeve: catalog.ConditionVeryGoodPlus,
	})
	require.NoError(t, err)
	return fixture{artist: artist, other: other, genre: genre, label: label, vinyl: vinyl}
}
