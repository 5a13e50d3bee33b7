package services

import (
	"testing"

	"voetbal-game-server/models"
)

func TestCatalogQueriesBeforeInitialize(t *testing.T) {
	catalog := NewCatalogService(stubSource{})
	if catalog.IsInitialized() {
		t.Fatal("fresh catalog cannot be initialized")
	}
	if clubs := catalog.GetAllClubs(); clubs != nil {
		t.Fatalf("uninitialized catalog returned clubs: %v", clubs)
	}
	if catalog.GetPlayerByID(1) != nil {
		t.Fatal("uninitialized catalog returned a player")
	}
	if rating := catalog.AverageClubRating(47, 60); rating != 60 {
		t.Fatalf("uninitialized rating should fall back, got %d", rating)
	}
}

func TestCatalogTransformation(t *testing.T) {
	catalog := newTestCatalog(t)

	clubs := catalog.GetAllClubs()
	if len(clubs) != 2 {
		t.Fatalf("clubs = %d, want 2", len(clubs))
	}
	// Collated name order: Manchester City before Telstar.
	if clubs[0].ID != 47 || clubs[1].ID != 208 {
		t.Fatalf("club order wrong: %d, %d", clubs[0].ID, clubs[1].ID)
	}

	city := catalog.GetClubByID(47)
	if city.ShortName != "MCI" || city.Slug != "manchester-city" {
		t.Fatalf("styled club wrong: %+v", city)
	}
	telstar := catalog.GetClubByID(208)
	if telstar.ShortName != "TEL" {
		t.Fatalf("telstar style wrong: %+v", telstar)
	}

	if roster := catalog.GetPlayersByClub(47); len(roster) != 11 {
		t.Fatalf("club 47 roster = %d, want 11", len(roster))
	}
	if keepers := catalog.GetPlayersByPosition(models.PositionKeeper); len(keepers) != 1 {
		t.Fatalf("keepers = %d, want 1", len(keepers))
	}
}

func TestCatalogRarityFromRating(t *testing.T) {
	catalog := newTestCatalog(t)

	aron := catalog.GetPlayerByID(9) // rating 91
	if aron.Rarity != models.RarityLegendary {
		t.Fatalf("rating 91 should be legendary, got %s", aron.Rarity)
	}
	milan := catalog.GetPlayerByID(7) // rating 88
	if milan.Rarity != models.RarityRare {
		t.Fatalf("rating 88 should be rare, got %s", milan.Rarity)
	}
	kas := catalog.GetPlayerByID(1) // rating 80
	if kas.Rarity != models.RarityUncommon {
		t.Fatalf("rating 80 should be uncommon, got %s", kas.Rarity)
	}
	teun := catalog.GetPlayerByID(21) // rating 62
	if teun.Rarity != models.RarityCommon {
		t.Fatalf("rating 62 should be common, got %s", teun.Rarity)
	}
}

func TestAverageClubRating(t *testing.T) {
	catalog := newTestCatalog(t)
	// Telstar: (62 + 65) / 2 = 63 (integer division)
	if rating := catalog.AverageClubRating(208, 60); rating != 63 {
		t.Fatalf("telstar average = %d, want 63", rating)
	}
	if rating := catalog.AverageClubRating(9999, 60); rating != 60 {
		t.Fatalf("unknown club should fall back, got %d", rating)
	}
}

func TestNormalizePosition(t *testing.T) {
	cases := map[string]models.PlayerPosition{
		"K":   models.PositionKeeper,
		"GK":  models.PositionKeeper,
		"D":   models.PositionDefender,
		"DC":  models.PositionDefender,
		"B":   models.PositionDefender,
		"M":   models.PositionMidfielder,
		"A":   models.PositionAttacker,
		"???": models.PositionMidfielder,
	}
	for raw, want := range cases {
		if got := normalizePosition(raw); got != want {
			t.Errorf("normalizePosition(%q) = %s, want %s", raw, got, want)
		}
	}
}
