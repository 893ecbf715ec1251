package vinyls

import (
	"vinyl-api/internal/domain/catalog"
	"vinyl-api/internal/store"
	"vinyl-api/internal/types"
)

/* ---------- v1: flat ids ---------- */

type VinylV1 struct {
	catalog.Vinyl
	ArtistIDs []int `json:"artistIds"`
	GenreIDs  []int `json:"genreIds"`
}

/* ---------- v2: embedded references ---------- */

type VinylV2 struct {
	ID              int              `json:"id"`
	Title           string           `json:"title"`
	Year            int              `json:"year"`
	ConditionMedia  string           `json:"conditionMedia"`
	ConditionSleeve string           `json:"conditionSleeve"`
	Artist          catalog.Artist   `json:"artist"`
	Artists         []catalog.Artist `json:"artists"`
	Genre           catalog.Genre    `json:"genre"`
	Genres          []catalog.Genre  `json:"genres"`
	Label           catalog.Label    `json:"label"`
	CreatedAt       types.Timestamp  `json:"createdAt"`
	UpdatedAt       types.Timestamp  `json:"updatedAt"`
}

func BuildV1(d store.VinylDetail) VinylV1 {
	out := VinylV1{
		Vinyl:     d.Vinyl,
		ArtistIDs: make([]int, 0, len(d.Artists)),
		GenreIDs:  make([]int, 0, len(d.Genres)),
	}
	for _, a := range d.Artists {
		out.ArtistIDs = append(out.ArtistIDs, a.ID)
	}
	for _, g := range d.Genres {
		out.GenreIDs = append(out.GenreIDs, g.ID)
	}
	return out
}

func BuildV1List(list []store.VinylDetail) []VinylV1 {
	out := make([]VinylV1, 0, len(list))
	for _, d := range list {
		out = append(out, BuildV1(d))
	}
	return out
}

// BuildV2 embeds the references. ok is false for a vinyl without an artist
// or genre; such vinyls are left out of v2 responses.
func BuildV2(d store.VinylDetail) (VinylV2, bool) {
	if !d.Complete() {
		return VinylV2{}, false
	}
	v := d.Vinyl
	return VinylV2{
		ID:              v.ID,
		Title:           v.Title,
		Year:            v.Year,
		ConditionMedia:  v.ConditionMedia,
		ConditionSleeve: v.ConditionSleeve,
		Artist:          pick(d.Artists, v.ArtistID, func(a catalog.Artist) int { return a.ID }),
		Artists:         d.Artists,
		Genre:           pick(d.Genres, v.GenreID, func(g catalog.Genre) int { return g.ID }),
		Genres:          d.Genres,
		Label:           d.Label,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}, true
}

func BuildV2List(list []store.VinylDetail) []VinylV2 {
	out := make([]VinylV2, 0, len(list))
	for _, d := range list {
		if v, ok := BuildV2(d); ok {
			out = append(out, v)
		}
	}
	return out
}

// pick returns the primary entry, falling back to the first linked one.
func pick[T any](list []T, id int, idOf func(T) int) T {
	for _, item := range list {
		if idOf(item) == id {
			return item
		}
	}
	return list[0]
}
