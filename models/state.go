package models

// GameState is the full serializable state of one user's game. It is the
// persistence contract: everything here round-trips through JSON (timestamps
// serialize as RFC3339 text and are re-parsed on load). The engine owns the
// in-memory instance; the snapshot store only sees this shape.
type GameState struct {
	CurrentSession *GameSession   `json:"current_session,omitempty"`
	CurrentBattle  *BattleSession `json:"current_battle,omitempty"`
	SessionHistory []GameSession  `json:"session_history"`
	TotalCoins     int            `json:"total_coins"`
	GlobalStats    GlobalStats    `json:"global_stats"`

	ClubProgress map[int]*ClubProgress `json:"club_progress"`

	PlayerCards     map[int]*PlayerCard `json:"player_cards"`
	CollectionStats CollectionStats     `json:"collection_stats"`

	CurrentTeam *Team  `json:"current_team,omitempty"`
	SavedTeams  []Team `json:"saved_teams"`

	Tournament  *TournamentState `json:"tournament,omitempty"`
	TotalMedals int              `json:"total_medals"`

	OwnedStaffIDs []string `json:"owned_staff_ids"`
}

// NewGameState returns a zeroed state with all maps ready for use.
func NewGameState() *GameState {
	return &GameState{
		SessionHistory: []GameSession{},
		ClubProgress:   map[int]*ClubProgress{},
		PlayerCards:    map[int]*PlayerCard{},
		SavedTeams:     []Team{},
		OwnedStaffIDs:  []string{},
	}
}
