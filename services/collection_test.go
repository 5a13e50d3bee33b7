package services

import (
	"errors"
	"testing"

	"voetbal-game-server/models"
)

func TestAddPlayerCardValidation(t *testing.T) {
	e := newTestEngine(t, 13)
	if _, err := e.AddPlayerCard(models.Player{}); !errors.Is(err, ErrInvalidPlayer) {
		t.Fatalf("expected ErrInvalidPlayer, got %v", err)
	}
}

func TestAddPlayerCardDuplicateBumpsCopies(t *testing.T) {
	e := newTestEngine(t, 13)
	player := *e.catalog.GetPlayerByID(9)

	first, err := e.AddPlayerCard(player)
	if err != nil {
		t.Fatal(err)
	}
	if first.Copies != 1 || first.FirstObtained.IsZero() {
		t.Fatalf("fresh card wrong: %+v", first)
	}

	second, err := e.AddPlayerCard(player)
	if err != nil {
		t.Fatal(err)
	}
	if second.Copies != 2 {
		t.Fatalf("duplicate should bump copies to 2, got %d", second.Copies)
	}

	stats := e.CollectionStats()
	if stats.TotalCardsOwned != 2 || stats.TotalUniquePlayers != 1 {
		t.Fatalf("stats = %+v, want 2 owned / 1 unique", stats)
	}
}

func TestClubCompletion(t *testing.T) {
	e := newTestEngine(t, 13)

	// Telstar's two-man roster
	for _, id := range []int{21, 22} {
		if _, err := e.AddPlayerCard(*e.catalog.GetPlayerByID(id)); err != nil {
			t.Fatal(err)
		}
	}

	stats := e.CollectionStats()
	if !containsInt(stats.CompletedClubs, 208) {
		t.Fatalf("club 208 should be completed, got %v", stats.CompletedClubs)
	}
	if containsInt(stats.CompletedClubs, 47) {
		t.Fatal("club 47 is not completed")
	}

	// Completion sticks and never duplicates.
	if _, err := e.AddPlayerCard(*e.catalog.GetPlayerByID(21)); err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, id := range e.CollectionStats().CompletedClubs {
		if id == 208 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("club 208 listed %d times", count)
	}
}

func TestCardsByClubAndCompletion(t *testing.T) {
	e := newTestEngine(t, 13)
	if _, err := e.AddPlayerCard(*e.catalog.GetPlayerByID(21)); err != nil {
		t.Fatal(err)
	}
	if _, err := e.AddPlayerCard(*e.catalog.GetPlayerByID(9)); err != nil {
		t.Fatal(err)
	}

	if cards := e.CardsByClub(208); len(cards) != 1 {
		t.Fatalf("club 208 cards = %d, want 1", len(cards))
	}
	// 2 unique out of 13 catalog players
	completion := e.CollectionCompletion()
	if completion <= 0 || completion >= 100 {
		t.Fatalf("completion out of range: %f", completion)
	}
}
