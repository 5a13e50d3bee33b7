// config/balance.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BalanceConfig holds every tunable number of the game economy. The struct is
// treated as immutable after load: swapping the file changes game balance
// without touching engine logic.
type BalanceConfig struct {
	Session struct {
		DurationMinutes int `yaml:"duration_minutes"`
		MaxQuestions    int `yaml:"max_questions"`
	} `yaml:"session"`

	Scoring struct {
		CorrectAnswerCoins   int `yaml:"correct_answer_coins"`
		IncorrectAnswerCoins int `yaml:"incorrect_answer_coins"`
		CorrectAnswerXP      int `yaml:"correct_answer_xp"`
		IncorrectAnswerXP    int `yaml:"incorrect_answer_xp"`
	} `yaml:"scoring"`

	Tokens struct {
		EffortBonus struct {
			QuestionsPerToken int `yaml:"questions_per_token"`
			TokenReward       int `yaml:"token_reward"`
		} `yaml:"effort_bonus"`
		StreakBonuses struct {
			Streak3         int `yaml:"streak3"`
			Streak5         int `yaml:"streak5"`
			StreakMilestone int `yaml:"streak_milestone"` // every N after streak 5
		} `yaml:"streak_bonuses"`
		SessionEndBonus struct {
			MinimumQuestions  int     `yaml:"minimum_questions"`
			ActivityTokens    int     `yaml:"activity_tokens"`
			AccuracyThreshold float64 `yaml:"accuracy_threshold"` // percentage
			AccuracyTokens    int     `yaml:"accuracy_tokens"`
		} `yaml:"session_end_bonus"`
	} `yaml:"tokens"`

	Medals struct {
		CorrectAnswer int         `yaml:"correct_answer"`
		StreakBonus   map[int]int `yaml:"streak_bonus"` // streak length → medals
		PerfectMatch  int         `yaml:"perfect_match"`
		PhaseWin      struct {
			Group   int `yaml:"group"`
			Quarter int `yaml:"quarter"`
			Semi    int `yaml:"semi"`
			Final   int `yaml:"final"`
		} `yaml:"phase_win"`
	} `yaml:"medals"`

	Packs map[string]PackTier `yaml:"packs"` // keyed bronze/silver/gold

	Rarity struct {
		Distribution map[string]float64 `yaml:"distribution"` // weight per rarity
	} `yaml:"rarity"`

	Team struct {
		Formation struct {
			Keepers     int `yaml:"keepers"`
			Defenders   int `yaml:"defenders"`
			Midfielders int `yaml:"midfielders"`
			Attackers   int `yaml:"attackers"`
		} `yaml:"formation"`
	} `yaml:"team"`

	Battle struct {
		MinutesPerRound int `yaml:"minutes_per_round"`
		GoalCoins       int `yaml:"goal_coins"`
		GoalXP          int `yaml:"goal_xp"`
		BaselineRating  int `yaml:"baseline_rating"` // used when the player has no team
	} `yaml:"battle"`
}

// PackTier describes one purchasable card pack.
type PackTier struct {
	Cost      int `yaml:"cost"`       // in club tokens
	CardCount int `yaml:"card_count"` // cards per pack
	UnlockXP  int `yaml:"unlock_xp"`  // club XP needed to unlock
}

// FallbackClubID is used when a table has no club mapping.
const FallbackClubID = 180

// DefaultTableToClubMapping maps a multiplication table to its themed club.
var DefaultTableToClubMapping = map[int]int{
	1:  208, // Telstar
	2:  140, // Barcelona
	3:  163, // Real Madrid
	4:  115, // AC Milan
	5:  47,  // Manchester City
	6:  179, // AZ Alkmaar
	7:  391, // Bayern München
	8:  180, // Ajax
	9:  44,  // Liverpool
	10: 27,  // Crystal Palace
}

// DefaultBalance returns the compiled-in balance values.
func DefaultBalance() *BalanceConfig {
	cfg := &BalanceConfig{}

	cfg.Session.DurationMinutes = 5
	cfg.Session.MaxQuestions = 100

	cfg.Scoring.CorrectAnswerCoins = 2
	cfg.Scoring.IncorrectAnswerCoins = 1
	cfg.Scoring.CorrectAnswerXP = 2
	cfg.Scoring.IncorrectAnswerXP = 1

	cfg.Tokens.EffortBonus.QuestionsPerToken = 5
	cfg.Tokens.EffortBonus.TokenReward = 1
	cfg.Tokens.StreakBonuses.Streak3 = 1
	cfg.Tokens.StreakBonuses.Streak5 = 1
	cfg.Tokens.StreakBonuses.StreakMilestone = 5
	cfg.Tokens.SessionEndBonus.MinimumQuestions = 20
	cfg.Tokens.SessionEndBonus.ActivityTokens = 2
	cfg.Tokens.SessionEndBonus.AccuracyThreshold = 70
	cfg.Tokens.SessionEndBonus.AccuracyTokens = 1

	cfg.Medals.CorrectAnswer = 1
	cfg.Medals.StreakBonus = map[int]int{3: 2, 5: 5, 10: 10}
	cfg.Medals.PerfectMatch = 25
	cfg.Medals.PhaseWin.Group = 10
	cfg.Medals.PhaseWin.Quarter = 20
	cfg.Medals.PhaseWin.Semi = 30
	cfg.Medals.PhaseWin.Final = 50

	cfg.Packs = map[string]PackTier{
		"bronze": {Cost: 3, CardCount: 3, UnlockXP: 0},
		"silver": {Cost: 6, CardCount: 4, UnlockXP: 50},
		"gold":   {Cost: 12, CardCount: 5, UnlockXP: 150},
	}

	cfg.Rarity.Distribution = map[string]float64{
		"common":    60,
		"uncommon":  25,
		"rare":      12,
		"legendary": 3,
	}

	cfg.Team.Formation.Keepers = 1
	cfg.Team.Formation.Defenders = 4
	cfg.Team.Formation.Midfielders = 3
	cfg.Team.Formation.Attackers = 3

	cfg.Battle.MinutesPerRound = 9
	cfg.Battle.GoalCoins = 5
	cfg.Battle.GoalXP = 3
	cfg.Battle.BaselineRating = 60

	return cfg
}

// LoadBalance reads a YAML override file on top of the defaults. A missing
// file is not an error: the defaults apply as-is.
func LoadBalance(path string) (*BalanceConfig, error) {
	cfg := DefaultBalance()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read balance config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse balance config: %w", err)
	}
	return cfg, nil
}
