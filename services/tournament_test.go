package services

import (
	"errors"
	"testing"

	"voetbal-game-server/config"
	"voetbal-game-server/models"
)

func TestStartTournamentRequiresThreeTables(t *testing.T) {
	e := newTestEngine(t, 5)
	if _, err := e.StartTournament([]int{1, 2}, "FC Test", 47); !errors.Is(err, ErrTooFewTables) {
		t.Fatalf("expected ErrTooFewTables, got %v", err)
	}
}

func TestStartTournamentBuildsGroupStage(t *testing.T) {
	e := newTestEngine(t, 5)
	tournament, err := e.StartTournament([]int{1, 2, 3}, "FC Test", 47)
	if err != nil {
		t.Fatal(err)
	}

	if tournament.CurrentPhase != models.PhaseGroup || !tournament.IsActive {
		t.Fatalf("fresh tournament in wrong state: %s", TournamentSummary(tournament))
	}
	if len(tournament.Matches) != 3 {
		t.Fatalf("group stage has %d matches, want 3", len(tournament.Matches))
	}

	validOpponents := map[int]bool{208: true, 140: true, 163: true}
	for _, m := range tournament.Matches {
		if m.Phase != models.PhaseGroup {
			t.Fatalf("group match in phase %s", m.Phase)
		}
		if !validOpponents[m.OpponentClubID] {
			t.Fatalf("opponent %d not mapped from the selected tables", m.OpponentClubID)
		}
		if len(m.Tables) != 3 {
			t.Fatalf("every fixture shares the selected tables, got %v", m.Tables)
		}
		if m.ID == "" {
			t.Fatal("fixture without id")
		}
	}
}

func TestUnmappedTableGetsFallbackOpponent(t *testing.T) {
	e := newTestEngine(t, 5)
	tournament, err := e.StartTournament([]int{1, 2, 99}, "FC Test", 47)
	if err != nil {
		t.Fatal(err)
	}

	opponents := map[int]bool{}
	for _, m := range tournament.Matches {
		opponents[m.OpponentClubID] = true
	}
	if !opponents[config.FallbackClubID] {
		t.Fatalf("table 99 should pair against the fallback club %d, opponents: %v",
			config.FallbackClubID, opponents)
	}
}

func TestTournamentFullVictoryRun(t *testing.T) {
	e := newTestEngine(t, 5)
	if _, err := e.StartTournament([]int{1, 2, 3}, "FC Test", 47); err != nil {
		t.Fatal(err)
	}

	// Three group wins, then quarter, semi and final. 2-1 avoids the
	// clean-sheet bonus so the medal total is exactly the phase rewards.
	for i := 0; i < 6; i++ {
		match := e.CurrentTournamentMatch()
		if match == nil {
			t.Fatalf("no fixture at step %d: %s", i, TournamentSummary(e.State().Tournament))
		}
		e.CompleteMatch(2, 1)
	}

	tournament := e.State().Tournament
	if tournament.IsActive {
		t.Fatalf("tournament should be over: %s", TournamentSummary(tournament))
	}
	if tournament.CurrentPhase != models.PhaseFinal {
		t.Fatalf("final phase expected, got %s", tournament.CurrentPhase)
	}
	if tournament.Victories != 6 || tournament.Defeats != 0 {
		t.Fatalf("record = %d/%d, want 6/0", tournament.Victories, tournament.Defeats)
	}
	// 3 group wins at 10, quarter 20, semi 30, final 50
	if medals := e.TotalMedals(); medals != 130 {
		t.Fatalf("medals = %d, want 130", medals)
	}
}

func TestTournamentGroupElimination(t *testing.T) {
	e := newTestEngine(t, 5)
	if _, err := e.StartTournament([]int{1, 2, 3}, "FC Test", 47); err != nil {
		t.Fatal(err)
	}

	e.CompleteMatch(2, 1) // win
	e.CompleteMatch(0, 2) // loss
	e.CompleteMatch(1, 1) // tie counts as defeat

	tournament := e.State().Tournament
	if tournament.IsActive {
		t.Fatal("one win out of three should eliminate")
	}
	if tournament.Victories != 1 || tournament.Defeats != 2 {
		t.Fatalf("record = %d/%d, want 1/2", tournament.Victories, tournament.Defeats)
	}
	if e.IsQualified() {
		t.Fatal("eliminated player cannot be qualified")
	}

	// Completed tournaments accept no further results.
	e.CompleteMatch(5, 0)
	if after := e.State().Tournament; after.Victories != 1 {
		t.Fatalf("inactive tournament mutated: %s", TournamentSummary(after))
	}
}

func TestPerfectMatchBonus(t *testing.T) {
	e := newTestEngine(t, 5)
	if _, err := e.StartTournament([]int{1, 2, 3}, "FC Test", 47); err != nil {
		t.Fatal(err)
	}
	e.CompleteMatch(3, 0)
	// group win 10 plus clean sheet 25
	if medals := e.TotalMedals(); medals != 35 {
		t.Fatalf("medals = %d, want 35", medals)
	}
}

func TestMatchesByPhaseGrouping(t *testing.T) {
	e := newTestEngine(t, 5)
	if _, err := e.StartTournament([]int{1, 2, 3}, "FC Test", 47); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		e.CompleteMatch(2, 0)
	}

	bracket := e.MatchesByPhase()
	if len(bracket[models.PhaseGroup]) != 3 {
		t.Fatalf("group bracket = %d fixtures, want 3", len(bracket[models.PhaseGroup]))
	}
	if len(bracket[models.PhaseQuarter]) != 1 {
		t.Fatalf("quarter bracket = %d fixtures, want 1", len(bracket[models.PhaseQuarter]))
	}
}

func TestResetTournament(t *testing.T) {
	e := newTestEngine(t, 5)
	if _, err := e.StartTournament([]int{1, 2, 3}, "FC Test", 47); err != nil {
		t.Fatal(err)
	}
	e.ResetTournament()
	if e.State().Tournament != nil {
		t.Fatal("reset should discard the bracket")
	}
	if e.CurrentTournamentMatch() != nil {
		t.Fatal("no fixture after reset")
	}
}

func TestMedalWalletValidation(t *testing.T) {
	e := newTestEngine(t, 5)

	e.AddMedals(-10)
	e.AddMedals(0)
	if e.TotalMedals() != 0 {
		t.Fatalf("non-positive grants must be ignored, balance = %d", e.TotalMedals())
	}

	e.AddMedals(40)
	if e.SpendMedals(50) {
		t.Fatal("overspending must fail")
	}
	if e.SpendMedals(-5) {
		t.Fatal("negative spend must fail")
	}
	if !e.SpendMedals(40) {
		t.Fatal("exact spend should succeed")
	}
	if e.TotalMedals() != 0 {
		t.Fatalf("balance = %d, want 0", e.TotalMedals())
	}
}
