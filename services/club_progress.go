package services

import (
	"voetbal-game-server/models"
)

// packTierOrder is the ascending unlock order; bronze is always pre-unlocked.
var packTierOrder = []models.PackType{models.PackBronze, models.PackSilver, models.PackGold}

// GetClubProgress returns the club's ledger, lazily creating a zeroed one
// with bronze pre-unlocked. The same ledger instance is returned for a club
// from then on.
func (e *GameEngine) GetClubProgress(clubID int) models.ClubProgress {
	e.mu.Lock()
	defer e.mu.Unlock()
	return *e.clubProgressLocked(clubID)
}

func (e *GameEngine) clubProgressLocked(clubID int) *models.ClubProgress {
	if progress, ok := e.state.ClubProgress[clubID]; ok {
		return progress
	}
	progress := &models.ClubProgress{
		ClubID:        clubID,
		UnlockedPacks: []models.PackType{models.PackBronze},
	}
	e.state.ClubProgress[clubID] = progress
	return progress
}

// addSessionProgressLocked accumulates a finished session into its club's
// ledger. Clubless sessions (mixed tables, tournaments) feed no ledger; they
// only count toward the lifetime stats.
func (e *GameEngine) addSessionProgressLocked(session *models.GameSession) {
	if session.ClubID == nil {
		return
	}

	progress := e.clubProgressLocked(*session.ClubID)
	progress.TotalXP += session.XPEarned
	progress.TotalTokens += session.TokensEarned
	progress.TotalGamesPlayed++
	progress.TotalQuestionsAnswered += session.QuestionsAnswered
	progress.TotalCorrectAnswers += session.CorrectAnswers

	// Unlock tiers in ascending order the first time XP crosses each
	// threshold; tiers never lock again.
	for _, tier := range packTierOrder {
		pack, ok := e.cfg.Packs[string(tier)]
		if !ok || progress.HasUnlocked(tier) {
			continue
		}
		if progress.TotalXP >= pack.UnlockXP {
			progress.UnlockedPacks = append(progress.UnlockedPacks, tier)
		}
	}
}

// SpendTokens deducts from a club ledger; all-or-nothing.
func (e *GameEngine) SpendTokens(clubID, amount int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.spendTokensLocked(clubID, amount)
}

func (e *GameEngine) spendTokensLocked(clubID, amount int) bool {
	progress := e.clubProgressLocked(clubID)
	if progress.TotalTokens < amount {
		return false
	}
	progress.TotalTokens -= amount
	e.dirty = true
	return true
}

// AllClubProgress lists every ledger created so far.
func (e *GameEngine) AllClubProgress() []models.ClubProgress {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.ClubProgress, 0, len(e.state.ClubProgress))
	for _, p := range e.state.ClubProgress {
		out = append(out, *p)
	}
	return out
}
