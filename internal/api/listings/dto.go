package listings

import (
	"vinyl-api/internal/api/vinyls"
	"vinyl-api/internal/domain/market"
	"vinyl-api/internal/store"
	"vinyl-api/internal/types"

	"github.com/shopspring/decimal"
)

type ListingV1 struct {
	market.Listing
	Inventory market.Inventory `json:"inventory"`
}

type ListingV2 struct {
	ID        int                  `json:"id"`
	Status    market.ListingStatus `json:"status"`
	Price     decimal.Decimal      `json:"price"`
	Currency  string               `json:"currency"`
	Vinyl     vinyls.VinylV2       `json:"vinyl"`
	Inventory market.Inventory     `json:"inventory"`
	CreatedAt types.Timestamp      `json:"createdAt"`
	UpdatedAt types.Timestamp      `json:"updatedAt"`
}

func BuildV1(d store.ListingDetail) ListingV1 {
	return ListingV1{Listing: d.Listing, Inventory: d.Inventory}
}

func BuildV1List(list []store.ListingDetail) []ListingV1 {
	out := make([]ListingV1, 0, len(list))
	for _, d := range list {
		out = append(out, BuildV1(d))
	}
	return out
}

// BuildV2 is false when the listed vinyl is incomplete.
func BuildV2(d store.ListingDetail) (ListingV2, bool) {
	v, ok := vinyls.BuildV2(d.Vinyl)
	if !ok {
		return ListingV2{}, false
	}
	l := d.Listing
	return ListingV2{
		ID:        l.ID,
		Status:    l.Status,
		Price:     l.Price,
		Currency:  l.Currency,
		Vinyl:     v,
		Inventory: d.Inventory,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}, true
}

func BuildV2List(list []store.ListingDetail) []ListingV2 {
	out := make([]ListingV2, 0, len(list))
	for _, d := range list {
		if l, ok := BuildV2(d); ok {
			out = append(out, l)
		}
	}
	return out
}
