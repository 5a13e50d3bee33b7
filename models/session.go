package models

import "time"

// GameSession is one timed practice run. It is created by StartSession,
// mutated only by AnswerQuestion, and frozen by EndSession. Invariants:
// CorrectAnswers+IncorrectAnswers == QuestionsAnswered and
// BestStreak >= CurrentStreak at all times.
type GameSession struct {
	TableNumber       int        `json:"table_number"`
	ActiveTables      []int      `json:"active_tables"`
	ClubID            *int       `json:"club_id"` // nil when tables span multiple clubs
	StartTime         time.Time  `json:"start_time"`
	EndTime           *time.Time `json:"end_time,omitempty"`
	QuestionsAnswered int        `json:"questions_answered"`
	CorrectAnswers    int        `json:"correct_answers"`
	IncorrectAnswers  int        `json:"incorrect_answers"`
	CurrentStreak     int        `json:"current_streak"`
	BestStreak        int        `json:"best_streak"`
	CoinsEarned       int        `json:"coins_earned"`
	XPEarned          int        `json:"xp_earned"`
	TokensEarned      int        `json:"tokens_earned"`
	IsActive          bool       `json:"is_active"`
}

// Possession marks which side has the ball in a battle.
type Possession string

const (
	PossessionPlayer   Possession = "player"
	PossessionOpponent Possession = "opponent"
)

// BattleSession is a discrete-time simulated match. Match minutes only move
// forward and stay within 0-90; once IsActive is false no further round is
// resolved.
type BattleSession struct {
	OpponentClubID int            `json:"opponent_club_id"`
	ActiveTables   []int          `json:"active_tables"`
	PlayerScore    int            `json:"player_score"`
	OpponentScore  int            `json:"opponent_score"`
	StartTime      time.Time      `json:"start_time"`
	MatchMinutes   int            `json:"match_minutes"`
	Possession     Possession     `json:"possession"`
	CurrentStreak  int            `json:"current_streak"`
	History        []string       `json:"history"` // commentary log, oldest first
	IsActive       bool           `json:"is_active"`
	Rewards        BattleRewards  `json:"rewards"`
}

type BattleRewards struct {
	Coins int `json:"coins"`
	XP    int `json:"xp"`
}

// GlobalStats are lifetime totals folded in at session end.
type GlobalStats struct {
	TotalGamesPlayed        int     `json:"total_games_played"`
	TotalQuestionsAnswered  int     `json:"total_questions_answered"`
	TotalCorrectAnswers     int     `json:"total_correct_answers"`
	BestOverallStreak       int     `json:"best_overall_streak"`
	TotalTimePlayedMinutes  float64 `json:"total_time_played_minutes"`
}
