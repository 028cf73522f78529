package cheapshark

import "testing"

func strPtr(s string) *string { return &s }

func TestMapGameTransformsFields(t *testing.T) {
	price := flexString("19.99")
	rec := mapGame(gameResponse{
		GameID:         " 42 ",
		Cheapest:       &price,
		CheapestDealID: strPtr("deal-1"),
		External:       "Half-Life 2",
		Thumb:          "https://img.test/hl2.jpg",
	})

	if rec.GameID != "42" || rec.ExternalName != "Half-Life 2" {
		t.Fatalf("unexpected identifiers %+v", rec)
	}
	if rec.CheapestPrice == nil || *rec.CheapestPrice != "19.99" {
		t.Fatalf("expected price 19.99, got %v", rec.CheapestPrice)
	}
	if rec.CheapestDealID == nil || *rec.CheapestDealID != "deal-1" {
		t.Fatalf("expected deal id, got %v", rec.CheapestDealID)
	}
}

func TestMapGameDropsBlankOptionals(t *testing.T) {
	blank := flexString("  ")
	rec := mapGame(gameResponse{Cheapest: &blank, CheapestDealID: strPtr(""), InternalName: "HALFLIFE2"})

	if rec.CheapestPrice != nil || rec.CheapestDealID != nil {
		t.Fatalf("expected blank optionals dropped, got %+v", rec)
	}
	if rec.ExternalName != "HALFLIFE2" {
		t.Fatalf("expected internal name fallback, got %q", rec.ExternalName)
	}
}

func TestMapGamesPreservesOrder(t *testing.T) {
	out := mapGames([]gameResponse{{External: "B"}, {External: "A"}})
	if len(out) != 2 || out[0].ExternalName != "B" || out[1].ExternalName != "A" {
		t.Fatalf("expected upstream order preserved, got %+v", out)
	}
	if got := mapGames(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
