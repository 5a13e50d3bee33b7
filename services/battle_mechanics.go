package services

import "math"

// Battle mechanics: resolving a single attack/defense exchange from answer
// correctness and timing. Pure functions over an injected RandomSource.

type BattlePhase string

const (
	PhaseAttack  BattlePhase = "attack"
	PhaseDefense BattlePhase = "defense"
)

// RoundOutcome reports one resolved exchange. ScoreChanged means a goal fell:
// the player's on attack success, the opponent's on defense failure.
type RoundOutcome struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ScoreChanged bool   `json:"score_changed"`
}

// CalculateMovePower converts rating and answer speed into move power.
// A wrong answer always yields 0. Otherwise power is the rating scaled by a
// speed step (<2s 1.5x, <5s 1.2x, >10s 0.8x, else 1.0x) and a uniform
// variance in [0.9, 1.1], floored.
func CalculateMovePower(rating int, timeToAnswerSeconds float64, isCorrect bool, rng RandomSource) int {
	if !isCorrect {
		return 0
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	speedMultiplier := 1.0
	switch {
	case timeToAnswerSeconds < 2:
		speedMultiplier = 1.5
	case timeToAnswerSeconds < 5:
		speedMultiplier = 1.2
	case timeToAnswerSeconds > 10:
		speedMultiplier = 0.8
	}

	variance := 0.9 + rng.Float64()*0.2

	return int(math.Floor(float64(rating) * speedMultiplier * variance))
}

// ResolveRound pits player power against a simulated opponent. Opponent power
// is the opponent rating with uniform variance in [0.8, 1.2]; the stronger
// side wins the exchange.
func ResolveRound(playerPower int, opponentRating int, phase BattlePhase, rng RandomSource) RoundOutcome {
	if rng == nil {
		rng = DefaultRNG()
	}
	opponentPower := float64(opponentRating) * (0.8 + rng.Float64()*0.4)

	if phase == PhaseAttack {
		if float64(playerPower) > opponentPower {
			return RoundOutcome{
				Success:      true,
				Message:      "GOAL! Wat een schot!",
				ScoreChanged: true,
			}
		}
		return RoundOutcome{
			Success:      false,
			Message:      "Redding van de keeper!",
			ScoreChanged: false,
		}
	}

	// defending
	if float64(playerPower) > opponentPower {
		return RoundOutcome{
			Success:      true,
			Message:      "Bal veroverd! Geweldige ingreep.",
			ScoreChanged: false,
		}
	}
	return RoundOutcome{
		Success:      false,
		Message:      "Tegendoelpunt... de verdediging stond te slapen.",
		ScoreChanged: true,
	}
}
