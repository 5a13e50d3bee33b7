package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBalanceValues(t *testing.T) {
	cfg := DefaultBalance()

	if cfg.Scoring.CorrectAnswerCoins != 2 || cfg.Scoring.IncorrectAnswerCoins != 1 {
		t.Fatalf("coin scoring wrong: %+v", cfg.Scoring)
	}
	if cfg.Tokens.EffortBonus.QuestionsPerToken != 5 {
		t.Fatalf("effort milestone = %d, want 5", cfg.Tokens.EffortBonus.QuestionsPerToken)
	}
	if cfg.Medals.PhaseWin.Final != 50 {
		t.Fatalf("final win medals = %d, want 50", cfg.Medals.PhaseWin.Final)
	}

	bronze, ok := cfg.Packs["bronze"]
	if !ok || bronze.Cost != 3 || bronze.CardCount != 3 || bronze.UnlockXP != 0 {
		t.Fatalf("bronze tier wrong: %+v", bronze)
	}
	gold := cfg.Packs["gold"]
	if gold.Cost != 12 || gold.UnlockXP != 150 {
		t.Fatalf("gold tier wrong: %+v", gold)
	}

	total := 0.0
	for _, w := range cfg.Rarity.Distribution {
		total += w
	}
	if total != 100 {
		t.Fatalf("rarity weights sum to %f, want 100", total)
	}

	formation := cfg.Team.Formation
	if formation.Keepers+formation.Defenders+formation.Midfielders+formation.Attackers != 11 {
		t.Fatalf("formation does not field 11: %+v", formation)
	}
}

func TestLoadBalanceMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadBalance(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Session.DurationMinutes != 5 {
		t.Fatalf("defaults not applied: %+v", cfg.Session)
	}
}

func TestLoadBalanceOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	override := []byte("session:\n  duration_minutes: 10\nscoring:\n  correct_answer_coins: 4\n")
	if err := os.WriteFile(path, override, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBalance(path)
	if err != nil {
		t.Fatalf("load override: %v", err)
	}
	if cfg.Session.DurationMinutes != 10 {
		t.Fatalf("override not applied: %d", cfg.Session.DurationMinutes)
	}
	if cfg.Scoring.CorrectAnswerCoins != 4 {
		t.Fatalf("override not applied: %d", cfg.Scoring.CorrectAnswerCoins)
	}
	// Untouched keys keep their defaults.
	if cfg.Scoring.IncorrectAnswerCoins != 1 {
		t.Fatalf("default lost on partial override: %d", cfg.Scoring.IncorrectAnswerCoins)
	}
}

func TestLoadBalanceRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBalance(path); err == nil {
		t.Fatal("malformed YAML should error")
	}
}

func TestTableMappingCoversAllTables(t *testing.T) {
	for table := 1; table <= 10; table++ {
		if _, ok := DefaultTableToClubMapping[table]; !ok {
			t.Fatalf("table %d has no club", table)
		}
	}
	if DefaultTableToClubMapping[8] != FallbackClubID {
		t.Fatalf("table 8 should map to the fallback club, got %d", DefaultTableToClubMapping[8])
	}
}
