package services

import (
	"testing"

	"voetbal-game-server/models"
)

func TestPlayBattleRoundWithoutBattle(t *testing.T) {
	e := newTestEngine(t, 31)
	if result := e.PlayBattleRound(2, true); result != nil {
		t.Fatalf("no battle, expected nil result, got %+v", result)
	}
}

func TestStartBattleDefaults(t *testing.T) {
	e := newTestEngine(t, 31)
	battle := e.StartBattle(208, nil)

	if !battle.IsActive {
		t.Fatal("fresh battle should be active")
	}
	if battle.Possession != models.PossessionPlayer {
		t.Fatalf("home team kicks off, got %s", battle.Possession)
	}
	if len(battle.ActiveTables) != 10 {
		t.Fatalf("default table pool = %v", battle.ActiveTables)
	}
	if len(battle.History) != 1 {
		t.Fatalf("kickoff commentary missing: %v", battle.History)
	}
}

func TestBattleRoundsAdvanceTheClock(t *testing.T) {
	e := newTestEngine(t, 31)
	e.StartBattle(208, []int{5})

	lastPossession := models.PossessionPlayer
	for i := 1; i <= 10; i++ {
		result := e.PlayBattleRound(3, true)
		if result == nil {
			t.Fatalf("round %d rejected before full time", i)
		}
		if result.MatchMinutes != min90(9*i) {
			t.Fatalf("round %d minutes = %d", i, result.MatchMinutes)
		}
		if result.Possession == lastPossession {
			t.Fatalf("possession should alternate each round, stuck on %s", result.Possession)
		}
		lastPossession = result.Possession
		if result.MedalsEarned < 1 {
			t.Fatalf("correct answer should earn at least 1 medal, got %d", result.MedalsEarned)
		}
		if result.PlayerScore+result.OpponentScore > i {
			t.Fatalf("more goals than rounds at round %d", i)
		}
	}

	final := e.State().CurrentBattle
	if final.MatchMinutes != 90 {
		t.Fatalf("match should stand at 90 minutes, got %d", final.MatchMinutes)
	}
	if extra := e.PlayBattleRound(3, true); extra != nil {
		t.Fatal("full-time battle must reject further rounds")
	}
}

func TestBattleWrongAnswerResetsStreak(t *testing.T) {
	e := newTestEngine(t, 31)
	e.StartBattle(208, []int{5})

	e.PlayBattleRound(2, true)
	e.PlayBattleRound(2, true)
	result := e.PlayBattleRound(2, false)
	if result.MedalsEarned != 0 {
		t.Fatalf("wrong answer earns no medals, got %d", result.MedalsEarned)
	}
	if e.State().CurrentBattle.CurrentStreak != 0 {
		t.Fatal("wrong answer should reset the battle streak")
	}
}

func TestBattleStreakMedalBonus(t *testing.T) {
	e := newTestEngine(t, 31)
	e.StartBattle(208, []int{5})

	e.PlayBattleRound(2, true)
	e.PlayBattleRound(2, true)
	result := e.PlayBattleRound(2, true)
	// 1 for the answer plus the streak-3 bonus of 2
	if result.MedalsEarned != 3 {
		t.Fatalf("third correct in a row = %d medals, want 3", result.MedalsEarned)
	}
}

func TestEndBattleFoldsRewardsOnce(t *testing.T) {
	e := newTestEngine(t, 31)
	if e.EndBattle() != nil {
		t.Fatal("no battle to end")
	}

	e.StartBattle(208, []int{5})
	for i := 0; i < 10; i++ {
		e.PlayBattleRound(1, true)
	}

	battle := e.EndBattle()
	if battle == nil || battle.IsActive {
		t.Fatal("battle should be deactivated")
	}
	coins := e.State().TotalCoins
	if coins != battle.Rewards.Coins {
		t.Fatalf("coins = %d, want the battle rewards %d", coins, battle.Rewards.Coins)
	}

	// Ending again must not double the payout.
	e.EndBattle()
	if e.State().TotalCoins != coins {
		t.Fatal("double EndBattle paid twice")
	}
}

func min90(minutes int) int {
	if minutes > 90 {
		return 90
	}
	return minutes
}
