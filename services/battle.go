package services

import (
	"fmt"
	"time"

	"voetbal-game-server/models"
)

// defaultBattleTables is the question pool when the caller does not restrict
// tables for a battle.
var defaultBattleTables = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

// BattleRoundResult is what one resolved battle round reports back.
type BattleRoundResult struct {
	Outcome       RoundOutcome      `json:"outcome"`
	Phase         BattlePhase       `json:"phase"`
	MovePower     int               `json:"move_power"`
	PlayerScore   int               `json:"player_score"`
	OpponentScore int               `json:"opponent_score"`
	MatchMinutes  int               `json:"match_minutes"`
	Possession    models.Possession `json:"possession"`
	MedalsEarned  int               `json:"medals_earned"`
	FullTime      bool              `json:"full_time"`
}

// StartBattle begins a simulated match against a club. Battles advance by
// discrete question-resolved rounds, not wall clock; there is no countdown
// timer here.
func (e *GameEngine) StartBattle(opponentClubID int, tables []int) *models.BattleSession {
	if len(tables) == 0 {
		tables = defaultBattleTables
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	activeTables := make([]int, len(tables))
	copy(activeTables, tables)

	battle := &models.BattleSession{
		OpponentClubID: opponentClubID,
		ActiveTables:   activeTables,
		StartTime:      time.Now(),
		Possession:     models.PossessionPlayer, // home team kicks off
		History:        []string{"De wedstrijd is begonnen!"},
		IsActive:       true,
	}

	e.state.CurrentBattle = battle
	e.dirty = true
	return battle
}

// PlayBattleRound resolves one question-driven exchange of the active battle.
// The phase follows possession: the player attacks with the ball and defends
// without it. Returns nil when no battle accepts rounds.
func (e *GameEngine) PlayBattleRound(timeToAnswerSeconds float64, isCorrect bool) *BattleRoundResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	battle := e.state.CurrentBattle
	if battle == nil || !battle.IsActive || battle.MatchMinutes >= 90 {
		return nil
	}

	phase := PhaseAttack
	if battle.Possession == models.PossessionOpponent {
		phase = PhaseDefense
	}

	power := CalculateMovePower(e.activeTeamRatingLocked(), timeToAnswerSeconds, isCorrect, e.rng)
	opponentRating := e.cfg.Battle.BaselineRating
	if e.catalog != nil {
		opponentRating = e.catalog.AverageClubRating(battle.OpponentClubID, opponentRating)
	}
	outcome := ResolveRound(power, opponentRating, phase, e.rng)

	if outcome.ScoreChanged {
		if phase == PhaseAttack {
			battle.PlayerScore++
			battle.Rewards.Coins += e.cfg.Battle.GoalCoins
			battle.Rewards.XP += e.cfg.Battle.GoalXP
		} else {
			battle.OpponentScore++
		}
	}

	// Possession alternates: after the player's attack (goal or save) the
	// opponent has the ball, after a defense round (won ball or conceded
	// kickoff) the player does.
	if phase == PhaseAttack {
		battle.Possession = models.PossessionOpponent
	} else {
		battle.Possession = models.PossessionPlayer
	}

	medals := 0
	if isCorrect {
		battle.CurrentStreak++
		medals += e.cfg.Medals.CorrectAnswer
		if bonus, ok := e.cfg.Medals.StreakBonus[battle.CurrentStreak]; ok {
			medals += bonus
		}
	} else {
		battle.CurrentStreak = 0
	}
	e.state.TotalMedals += medals

	battle.MatchMinutes += e.cfg.Battle.MinutesPerRound
	if battle.MatchMinutes > 90 {
		battle.MatchMinutes = 90
	}

	battle.History = append(battle.History,
		fmt.Sprintf("%d' %s", battle.MatchMinutes, outcome.Message))

	e.dirty = true
	return &BattleRoundResult{
		Outcome:       outcome,
		Phase:         phase,
		MovePower:     power,
		PlayerScore:   battle.PlayerScore,
		OpponentScore: battle.OpponentScore,
		MatchMinutes:  battle.MatchMinutes,
		Possession:    battle.Possession,
		MedalsEarned:  medals,
		FullTime:      battle.MatchMinutes >= 90,
	}
}

// EndBattle deactivates the battle and folds its coin rewards into the
// lifetime total. The battle record stays around for display; only its
// active flag blocks further rounds. Returns nil when no battle exists.
func (e *GameEngine) EndBattle() *models.BattleSession {
	e.mu.Lock()
	defer e.mu.Unlock()

	battle := e.state.CurrentBattle
	if battle == nil {
		return nil
	}
	if battle.IsActive {
		battle.IsActive = false
		e.state.TotalCoins += battle.Rewards.Coins
		e.dirty = true
	}
	return battle
}

// activeTeamRatingLocked: the current team's rating drives move power; a
// player without a (rated) team plays at the baseline.
func (e *GameEngine) activeTeamRatingLocked() int {
	if t := e.state.CurrentTeam; t != nil && t.TotalRating > 0 {
		return t.TotalRating
	}
	return e.cfg.Battle.BaselineRating
}
