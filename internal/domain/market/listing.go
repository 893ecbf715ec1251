package market

import (
	"vinyl-api/internal/types"

	"github.com/shopspring/decimal"
)

func init() {
	// prices render as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

type ListingStatus string

const (
	StatusDraft     ListingStatus = "DRAFT"
	StatusPublished ListingStatus = "PUBLISHED"
	StatusArchived  ListingStatus = "ARCHIVED"
)

const DefaultCurrency = "EUR"

func (s ListingStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

type Listing struct {
	ID        int             `json:"id"`
	VinylID   int             `json:"vinylId"`
	Status    ListingStatus   `json:"status"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	CreatedAt types.Timestamp `json:"createdAt"`
	UpdatedAt types.Timestamp `json:"updatedAt"`
}
