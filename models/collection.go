package models

import "time"

// PlayerCard is a catalog player the user owns, with a copy count. A card is
// created once per player id; duplicate acquisitions bump Copies.
type PlayerCard struct {
	Player
	Copies        int       `json:"copies"`
	FirstObtained time.Time `json:"first_obtained"`
}

// CollectionStats are aggregates recomputed after every new unique card.
type CollectionStats struct {
	TotalCardsOwned    int   `json:"total_cards_owned"`
	TotalUniquePlayers int   `json:"total_unique_players"`
	CompletedClubs     []int `json:"completed_clubs"`
}
