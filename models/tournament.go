package models

type TournamentPhase string

const (
	PhaseGroup   TournamentPhase = "group"
	PhaseQuarter TournamentPhase = "quarter"
	PhaseSemi    TournamentPhase = "semi"
	PhaseFinal   TournamentPhase = "final"
)

// PhaseOrder is the fixed bracket progression; phases are never skipped.
var PhaseOrder = []TournamentPhase{PhaseGroup, PhaseQuarter, PhaseSemi, PhaseFinal}

// TournamentMatch is one bracket fixture. Scores stay nil until the match is
// completed; Tables is the shared question pool for the fixture.
type TournamentMatch struct {
	ID             string          `json:"id"`
	Phase          TournamentPhase `json:"phase"`
	OpponentClubID int             `json:"opponent_club_id"`
	PlayerScore    *int            `json:"player_score,omitempty"`
	OpponentScore  *int            `json:"opponent_score,omitempty"`
	Completed      bool            `json:"completed"`
	Tables         []int           `json:"tables"`
}

// TournamentState is one bracket run. IsActive goes false on elimination
// (fewer than 2 group wins) or after the final completes.
type TournamentState struct {
	SelectedTables    []int             `json:"selected_tables"`
	CurrentPhase      TournamentPhase   `json:"current_phase"`
	Matches           []TournamentMatch `json:"matches"`
	CurrentMatchIndex int               `json:"current_match_index"`
	IsActive          bool              `json:"is_active"`
	Victories         int               `json:"victories"`
	Defeats           int               `json:"defeats"`
	PlayerTeamName    string            `json:"player_team_name"`
	PlayerClubID      int               `json:"player_club_id"`
}
