package models

// Catalog types produced by the offline scraper and transformed at startup.

type PlayerPosition string

const (
	PositionKeeper     PlayerPosition = "K"
	PositionDefender   PlayerPosition = "D"
	PositionMidfielder PlayerPosition = "M"
	PositionAttacker   PlayerPosition = "A"
)

type PlayerRarity string

const (
	RarityCommon    PlayerRarity = "common"
	RarityUncommon  PlayerRarity = "uncommon"
	RarityRare      PlayerRarity = "rare"
	RarityLegendary PlayerRarity = "legendary"
)

// PackType is a purchasable pack tier, unlocked per club by XP.
type PackType string

const (
	PackBronze PackType = "bronze"
	PackSilver PackType = "silver"
	PackGold   PackType = "gold"
)

// Club is a themed opponent/collection grouping mapped from a practice table.
type Club struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	ShortName      string `json:"short_name"`
	Slug           string `json:"slug"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

// Player is a catalog entry; rating drives both battle power and rarity.
type Player struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	ClubID      int            `json:"club_id"`
	Position    PlayerPosition `json:"position"`
	Rating      int            `json:"rating"`
	ShirtNumber int            `json:"shirt_number"`
	Rarity      PlayerRarity   `json:"rarity"`
	ImageURL    string         `json:"image_url,omitempty"`
}

// RawClub / RawMembership mirror the scraper's JSON output.
type RawClub struct {
	ClubID int    `json:"clubId"`
	Name   string `json:"name"`
}

type RawMembership struct {
	PlayerID    int    `json:"playerId"`
	PlayerName  string `json:"playerName"`
	ClubID      int    `json:"clubId"`
	Position    string `json:"position"`
	Rating      int    `json:"rating"`
	ShirtNumber int    `json:"shirtNumber"`
}
