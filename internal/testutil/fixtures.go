package testutil

import "github.com/preston-bernstein/gamescout-service/internal/domain/games"

// StrPtr returns a pointer to s.
func StrPtr(s string) *string { return &s }

// SampleRecord returns a priced upstream record with a deal id.
func SampleRecord(id, name, price string) games.Record {
	return games.Record{
		GameID:         id,
		ExternalName:   name,
		CheapestPrice:  StrPtr(price),
		CheapestDealID: StrPtr("deal-" + id),
		ThumbnailURL:   "https://img.test/" + id + ".jpg",
	}
}

// UnpricedRecord returns an upstream record with no price or deal.
func UnpricedRecord(id, name string) games.Record {
	return games.Record{GameID: id, ExternalName: name}
}
