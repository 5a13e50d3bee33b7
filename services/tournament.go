package services

import (
	"errors"
	"fmt"
	"log"

	"voetbal-game-server/config"
	"voetbal-game-server/models"

	"github.com/google/uuid"
)

// Tournament bracket engine: group → quarter → semi → final, terminal on
// elimination or final completion.

// ErrTooFewTables is the hard precondition of StartTournament.
var ErrTooFewTables = errors.New("need at least 3 tables for a tournament")

// groupMatchCount: the group stage is always exactly 3 matches, of which at
// least 2 must be won to advance.
const (
	groupMatchCount    = 3
	groupWinsToAdvance = 2
)

// StartTournament begins a bracket run over the selected tables. The group
// stage pairs the player against 3 opponents drawn from a shuffle of the
// selected tables; every fixture shares the full selected-table question
// pool. A still-active tournament is replaced.
func (e *GameEngine) StartTournament(selectedTables []int, teamName string, clubID int) (*models.TournamentState, error) {
	if len(selectedTables) < groupMatchCount {
		return nil, ErrTooFewTables
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	tables := make([]int, len(selectedTables))
	copy(tables, selectedTables)

	shuffled := make([]int, len(tables))
	copy(shuffled, tables)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := e.rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	matches := make([]models.TournamentMatch, 0, groupMatchCount)
	for i := 0; i < groupMatchCount; i++ {
		opponentTable := shuffled[i%len(shuffled)]
		matches = append(matches, models.TournamentMatch{
			ID:             uuid.NewString(),
			Phase:          models.PhaseGroup,
			OpponentClubID: e.clubForTable(opponentTable),
			Tables:         tables,
		})
	}

	tournament := &models.TournamentState{
		SelectedTables: tables,
		CurrentPhase:   models.PhaseGroup,
		Matches:        matches,
		IsActive:       true,
		PlayerTeamName: teamName,
		PlayerClubID:   clubID,
	}
	e.state.Tournament = tournament
	e.dirty = true
	return tournament, nil
}

// clubForTable maps a table to its opponent club, with the fixed fallback for
// unmapped tables.
func (e *GameEngine) clubForTable(table int) int {
	if club, ok := e.tables[table]; ok {
		return club
	}
	return e.fallbackClubID()
}

func (e *GameEngine) fallbackClubID() int { return config.FallbackClubID }

// CurrentTournamentMatch returns the fixture awaiting completion, nil when
// there is none.
func (e *GameEngine) CurrentTournamentMatch() *models.TournamentMatch {
	e.mu.Lock()
	defer e.mu.Unlock()

	t := e.state.Tournament
	if t == nil || t.CurrentMatchIndex >= len(t.Matches) {
		return nil
	}
	match := t.Matches[t.CurrentMatchIndex]
	return &match
}

// CompleteMatch records the current fixture's result. Guarded no-op when the
// tournament is absent or inactive, the fixture is missing, or it was already
// completed (idempotent against double submission). A tie counts toward the
// defeat bucket. Victories earn the phase's medals, plus the perfect-match
// bonus on a clean sheet. Completing the last fixture of a phase advances the
// bracket.
func (e *GameEngine) CompleteMatch(playerScore, opponentScore int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t := e.state.Tournament
	if t == nil || !t.IsActive {
		return
	}
	if t.CurrentMatchIndex >= len(t.Matches) {
		return
	}
	match := &t.Matches[t.CurrentMatchIndex]
	if match.Completed {
		return
	}

	match.Completed = true
	ps, os := playerScore, opponentScore
	match.PlayerScore = &ps
	match.OpponentScore = &os

	if playerScore > opponentScore {
		t.Victories++
		medals := e.phaseWinMedals(match.Phase)
		if opponentScore == 0 {
			medals += e.cfg.Medals.PerfectMatch
		}
		e.addMedalsLocked(medals)
	} else {
		t.Defeats++
	}

	allCompleted := true
	for _, m := range t.Matches {
		if m.Phase == t.CurrentPhase && !m.Completed {
			allCompleted = false
			break
		}
	}

	if allCompleted {
		e.advancePhaseLocked()
	} else {
		t.CurrentMatchIndex++
	}
	e.dirty = true
}

// advancePhaseLocked applies the qualification rule and, when the run
// continues, appends exactly one fresh fixture for the next phase.
func (e *GameEngine) advancePhaseLocked() {
	t := e.state.Tournament
	if t == nil {
		return
	}

	if t.CurrentPhase == models.PhaseGroup && t.Victories < groupWinsToAdvance {
		t.IsActive = false // eliminated
		return
	}
	if t.CurrentPhase == models.PhaseFinal {
		t.IsActive = false // tournament over
		return
	}

	for i, phase := range models.PhaseOrder {
		if phase == t.CurrentPhase {
			t.CurrentPhase = models.PhaseOrder[i+1]
			break
		}
	}

	opponentTable := t.SelectedTables[e.rng.IntN(len(t.SelectedTables))]
	t.Matches = append(t.Matches, models.TournamentMatch{
		ID:             uuid.NewString(),
		Phase:          t.CurrentPhase,
		OpponentClubID: e.clubForTable(opponentTable),
		Tables:         t.SelectedTables,
	})
	t.CurrentMatchIndex = len(t.Matches) - 1
}

func (e *GameEngine) phaseWinMedals(phase models.TournamentPhase) int {
	switch phase {
	case models.PhaseGroup:
		return e.cfg.Medals.PhaseWin.Group
	case models.PhaseQuarter:
		return e.cfg.Medals.PhaseWin.Quarter
	case models.PhaseSemi:
		return e.cfg.Medals.PhaseWin.Semi
	case models.PhaseFinal:
		return e.cfg.Medals.PhaseWin.Final
	}
	return 0
}

// IsQualified is true outside the group phase; within it, it tracks the
// 2-wins requirement.
func (e *GameEngine) IsQualified() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	t := e.state.Tournament
	if t == nil || t.CurrentPhase != models.PhaseGroup {
		return true
	}
	return t.Victories >= groupWinsToAdvance
}

// MatchesByPhase groups the fixtures for bracket display.
func (e *GameEngine) MatchesByPhase() map[models.TournamentPhase][]models.TournamentMatch {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := map[models.TournamentPhase][]models.TournamentMatch{}
	for _, phase := range models.PhaseOrder {
		out[phase] = []models.TournamentMatch{}
	}
	if t := e.state.Tournament; t != nil {
		for _, m := range t.Matches {
			out[m.Phase] = append(out[m.Phase], m)
		}
	}
	return out
}

// ResetTournament discards the bracket run entirely.
func (e *GameEngine) ResetTournament() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Tournament = nil
	e.dirty = true
}

// validatePositiveAmount guards the medal wallet; non-positive amounts are
// logged and ignored.
func validatePositiveAmount(amount int, operation string) bool {
	if amount <= 0 {
		log.Printf("⚠️  %s: amount must be positive, received %d", operation, amount)
		return false
	}
	return true
}

// AddMedals credits the medal wallet; rejects non-positive amounts.
func (e *GameEngine) AddMedals(amount int) {
	if !validatePositiveAmount(amount, "AddMedals") {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.addMedalsLocked(amount)
}

func (e *GameEngine) addMedalsLocked(amount int) {
	if amount <= 0 {
		return
	}
	e.state.TotalMedals += amount
	e.dirty = true
}

// SpendMedals deducts from the medal wallet; rejects non-positive amounts and
// insufficient balance, both without mutation.
func (e *GameEngine) SpendMedals(amount int) bool {
	if !validatePositiveAmount(amount, "SpendMedals") {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.spendMedalsLocked(amount)
}

func (e *GameEngine) spendMedalsLocked(amount int) bool {
	if e.state.TotalMedals < amount {
		return false
	}
	e.state.TotalMedals -= amount
	e.dirty = true
	return true
}

// TotalMedals returns the wallet balance.
func (e *GameEngine) TotalMedals() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.TotalMedals
}

// TournamentSummary is a human-readable line for logs and responses.
func TournamentSummary(t *models.TournamentState) string {
	if t == nil {
		return "no tournament"
	}
	return fmt.Sprintf("phase=%s matches=%d victories=%d defeats=%d active=%t",
		t.CurrentPhase, len(t.Matches), t.Victories, t.Defeats, t.IsActive)
}
