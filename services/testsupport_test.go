package services

import (
	"encoding/json"
	"testing"

	"voetbal-game-server/config"
	"voetbal-game-server/models"
)

// stubSource feeds the catalog from in-memory fixtures.
type stubSource struct {
	clubs       []models.RawClub
	memberships []models.RawMembership
}

func (s stubSource) FetchClubs() ([]byte, error)       { return json.Marshal(s.clubs) }
func (s stubSource) FetchMemberships() ([]byte, error) { return json.Marshal(s.memberships) }

// fixedRNG always returns the same value, pinning variance branches.
type fixedRNG struct{ v float64 }

func (f fixedRNG) Float64() float64 { return f.v }
func (f fixedRNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(f.v * float64(n))
}

// newTestCatalog builds an initialized catalog with two clubs: Manchester
// City (47) with a full formation's worth of players and Telstar (208) with a
// two-man roster for completion tests.
func newTestCatalog(t *testing.T) *CatalogService {
	t.Helper()

	memberships := []models.RawMembership{
		{PlayerID: 1, PlayerName: "Kas de Keeper", ClubID: 47, Position: "K", Rating: 80, ShirtNumber: 1},
		{PlayerID: 2, PlayerName: "Daan", ClubID: 47, Position: "D", Rating: 78, ShirtNumber: 2},
		{PlayerID: 3, PlayerName: "Dirk", ClubID: 47, Position: "D", Rating: 76, ShirtNumber: 3},
		{PlayerID: 4, PlayerName: "Dries", ClubID: 47, Position: "D", Rating: 82, ShirtNumber: 4},
		{PlayerID: 5, PlayerName: "David", ClubID: 47, Position: "D", Rating: 74, ShirtNumber: 5},
		{PlayerID: 6, PlayerName: "Mees", ClubID: 47, Position: "M", Rating: 85, ShirtNumber: 6},
		{PlayerID: 7, PlayerName: "Milan", ClubID: 47, Position: "M", Rating: 88, ShirtNumber: 8},
		{PlayerID: 8, PlayerName: "Mats", ClubID: 47, Position: "M", Rating: 79, ShirtNumber: 10},
		{PlayerID: 9, PlayerName: "Aron", ClubID: 47, Position: "A", Rating: 91, ShirtNumber: 7},
		{PlayerID: 10, PlayerName: "Abel", ClubID: 47, Position: "A", Rating: 86, ShirtNumber: 9},
		{PlayerID: 11, PlayerName: "Arie", ClubID: 47, Position: "A", Rating: 83, ShirtNumber: 11},
		{PlayerID: 21, PlayerName: "Teun", ClubID: 208, Position: "M", Rating: 62, ShirtNumber: 8},
		{PlayerID: 22, PlayerName: "Tim", ClubID: 208, Position: "A", Rating: 65, ShirtNumber: 9},
	}

	catalog := NewCatalogService(stubSource{
		clubs: []models.RawClub{
			{ClubID: 47, Name: "Manchester City"},
			{ClubID: 208, Name: "Telstar"},
		},
		memberships: memberships,
	})
	if err := catalog.Initialize(); err != nil {
		t.Fatalf("catalog initialize: %v", err)
	}
	return catalog
}

func newTestEngine(t *testing.T, seed uint64) *GameEngine {
	t.Helper()
	return NewGameEngine("test-user", config.DefaultBalance(), config.DefaultTableToClubMapping,
		newTestCatalog(t), NewSeededRNG(seed))
}
