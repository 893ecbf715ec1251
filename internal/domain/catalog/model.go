package catalog

import "vinyl-api/internal/types"

type Artist struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Label struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Vinyl keeps a primary artist and genre for the flat v1 shape. The full
// sets live in the VinylArtist and VinylGenre link tables.
type Vinyl struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	ArtistID        int             `json:"artistId"`
	LabelID         int             `json:"labelId"`
	GenreID         int             `json:"genreId"`
	Year            int             `json:"year"`
	ConditionMedia  string          `json:"conditionMedia"`
	ConditionSleeve string          `json:"conditionSleeve"`
	CreatedAt       types.Timestamp `json:"createdAt"`
	UpdatedAt       types.Timestamp `json:"updatedAt"`
}

type VinylArtist struct {
	VinylID  int `json:"vinylId"`
	ArtistID int `json:"artistId"`
}

type VinylGenre struct {
	VinylID int `json:"vinylId"`
	GenreID int `json:"genreId"`
}
