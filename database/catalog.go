package database

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"vinyl-api/config"
	"vinyl-api/internal/domain/catalog"
	"vinyl-api/internal/domain/market"
	"vinyl-api/internal/store"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var catalogHeader = []string{
	"title", "artists", "label", "genres", "year",
	"condition_media", "condition_sleeve", "price", "currency", "stock", "status",
}

// ImportResult counts what a catalog import produced.
type ImportResult struct {
	Vinyls   int `json:"vinyls"`
	Listings int `json:"listings"`
	Skipped  int `json:"skipped"`
}

type catalogRow struct {
	line            int
	title           string
	artists         []string
	label           string
	genres          []string
	year            int
	conditionMedia  string
	conditionSleeve string
	listing         *store.NewListing
}

// ImportCatalog reads catalog rows and creates the vinyls they describe.
// Artists, genres and labels go through the deduplicating creates, so the
// same name in different case resolves to one record. Rows with a price
// also get a listing. A malformed row is logged and skipped; only an
// unreadable or mis-headed file is an error.
func ImportCatalog(s *store.Store, r io.Reader, logger *logrus.Logger) (ImportResult, error) {
	var res ImportResult

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = len(catalogHeader)

	header, err := cr.Read()
	if err != nil {
		return res, fmt.Errorf("read header: %w", err)
	}
	for i, want := range catalogHeader {
		if strings.TrimSpace(strings.ToLower(header[i])) != want {
			return res, fmt.Errorf("unexpected column %d: got %q, want %q", i+1, header[i], want)
		}
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				config.LogError(logger, "database", "ImportCatalog", "parse row", map[string]int{"line": perr.Line}, err)
				res.Skipped++
				continue
			}
			return res, err
		}

		line, _ := cr.FieldPos(0)
		row, err := parseCatalogRow(line, rec)
		if err == nil {
			err = importRow(s, row, &res)
		}
		if err != nil {
			config.LogError(logger, "database", "ImportCatalog", "skip row", map[string]any{"line": line, "title": rec[0]}, err)
			res.Skipped++
		}
	}
	return res, nil
}

func parseCatalogRow(line int, rec []string) (catalogRow, error) {
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	row := catalogRow{
		line:            line,
		title:           rec[0],
		artists:         splitNames(rec[1]),
		label:           rec[2],
		genres:          splitNames(rec[3]),
		conditionMedia:  rec[5],
		conditionSleeve: rec[6],
	}
	if row.title == "" {
		return row, errors.New("title is required")
	}
	if len(row.artists) == 0 || len(row.genres) == 0 || row.label == "" {
		return row, errors.New("artists, label and genres are required")
	}
	year, err := strconv.Atoi(rec[4])
	if err != nil {
		return row, fmt.Errorf("year %q: %w", rec[4], err)
	}
	row.year = year
	if !catalog.ValidCondition(row.conditionMedia) || !catalog.ValidCondition(row.conditionSleeve) {
		return row, fmt.Errorf("unknown condition %q/%q", rec[5], rec[6])
	}

	if rec[7] == "" {
		return row, nil
	}
	price, err := decimal.NewFromString(rec[7])
	if err != nil {
		return row, fmt.Errorf("price %q: %w", rec[7], err)
	}
	if !price.IsPositive() {
		return row, fmt.Errorf("price %s must be positive", price)
	}
	stock := 0
	if rec[9] != "" {
		if stock, err = strconv.Atoi(rec[9]); err != nil || stock < 0 {
			return row, fmt.Errorf("stock %q is not a non-negative integer", rec[9])
		}
	}
	status := market.ListingStatus(strings.ToUpper(rec[10]))
	if status == "" {
		status = market.StatusDraft
	}
	if !status.Valid() {
		return row, fmt.Errorf("unknown status %q", rec[10])
	}
	row.listing = &store.NewListing{Status: status, Price: price, Currency: rec[8], InitialStock: stock}
	return row, nil
}

func importRow(s *store.Store, row catalogRow, res *ImportResult) error {
	label, _, err := s.CreateLabel(row.label)
	if err != nil {
		return err
	}
	in := store.NewVinyl{
		Title:           row.title,
		LabelID:         label.ID,
		Year:            row.year,
		ConditionMedia:  row.conditionMedia,
		ConditionSleeve: row.conditionSleeve,
	}
	for _, name := range row.artists {
		a, _, err := s.CreateArtist(name)
		if err != nil {
			return err
		}
		in.ArtistIDs = append(in.ArtistIDs, a.ID)
	}
	for _, name := range row.genres {
		g, _, err := s.CreateGenre(name)
		if err != nil {
			return err
		}
		in.GenreIDs = append(in.GenreIDs, g.ID)
	}

	v, err := s.CreateVinyl(in)
	if err != nil {
		return err
	}
	res.Vinyls++

	if row.listing == nil {
		return nil
	}
	nl := *row.listing
	nl.VinylID = v.ID
	if _, _, err := s.CreateListing(nl); err != nil {
		return err
	}
	res.Listings++
	return nil
}

func splitNames(field string) []string {
	var out []string
	for _, part := range strings.Split(field, "|") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
