package models

// ClubProgress is the per-club XP/token ledger, created lazily on first
// access. UnlockedPacks only ever grows: once a tier is unlocked it stays
// unlocked, in ascending tier order with bronze always present.
type ClubProgress struct {
	ClubID                 int        `json:"club_id"`
	TotalXP                int        `json:"total_xp"`
	TotalTokens            int        `json:"total_tokens"`
	UnlockedPacks          []PackType `json:"unlocked_packs"`
	TotalGamesPlayed       int        `json:"total_games_played"`
	TotalQuestionsAnswered int        `json:"total_questions_answered"`
	TotalCorrectAnswers    int        `json:"total_correct_answers"`
}

// HasUnlocked reports whether a pack tier is already unlocked.
func (p *ClubProgress) HasUnlocked(tier PackType) bool {
	for _, t := range p.UnlockedPacks {
		if t == tier {
			return true
		}
	}
	return false
}
