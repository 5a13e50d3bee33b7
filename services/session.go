package services

import (
	"errors"
	"log"
	"math"
	"time"

	"voetbal-game-server/models"
)

// ErrNoTables is the hard precondition of StartSession: callers must validate
// their table selection first. Everything else in the session lifecycle
// degrades to a no-op instead of failing.
var ErrNoTables = errors.New("cannot start session with empty tables list")

// StartSession creates and activates a new practice session. If a session is
// still active it is finalized through the normal EndSession path first, so
// no earned rewards are dropped.
//
// The session's club id is only set when every active table maps to the same
// defined club; otherwise the session is clubless and later skipped by the
// club-progress bookkeeping.
func (e *GameEngine) StartSession(tables []int) (*models.GameSession, error) {
	if len(tables) == 0 {
		return nil, ErrNoTables
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.CurrentSession != nil && e.state.CurrentSession.IsActive {
		log.Printf("⚠️  StartSession(%s): finalizing still-active session first", e.userID)
		e.endSessionLocked()
	}

	activeTables := make([]int, len(tables))
	copy(activeTables, tables)

	session := &models.GameSession{
		TableNumber:  activeTables[0],
		ActiveTables: activeTables,
		ClubID:       e.commonClub(activeTables),
		StartTime:    time.Now(),
		IsActive:     true,
	}

	e.state.CurrentSession = session
	e.questions.Reset()
	e.dirty = true
	return session, nil
}

// commonClub returns the shared club id when all tables map to the same
// defined club, nil otherwise.
func (e *GameEngine) commonClub(tables []int) *int {
	first, ok := e.tables[tables[0]]
	if !ok {
		return nil
	}
	for _, t := range tables[1:] {
		club, ok := e.tables[t]
		if !ok || club != first {
			return nil
		}
	}
	return &first
}

// AnswerQuestion records one graded answer on the active session. No-op when
// no session is active. Wrong answers still earn the smaller coin/XP amounts;
// token rewards are recomputed on every call.
func (e *GameEngine) AnswerQuestion(isCorrect bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.state.CurrentSession
	if session == nil || !session.IsActive {
		return
	}

	session.QuestionsAnswered++

	xpMultiplier := 1 + e.staffEffect(models.EffectXPBoost)

	if isCorrect {
		session.CorrectAnswers++
		session.CurrentStreak++
		if session.CurrentStreak > session.BestStreak {
			session.BestStreak = session.CurrentStreak
		}
		session.CoinsEarned += e.cfg.Scoring.CorrectAnswerCoins
		session.XPEarned += int(math.Round(float64(e.cfg.Scoring.CorrectAnswerXP) * xpMultiplier))
	} else {
		session.IncorrectAnswers++
		session.CurrentStreak = 0
		session.CoinsEarned += e.cfg.Scoring.IncorrectAnswerCoins
		session.XPEarned += int(math.Round(float64(e.cfg.Scoring.IncorrectAnswerXP) * xpMultiplier))
	}

	session.TokensEarned += e.tokenRewards(session)
	e.dirty = true
}

// tokenRewards computes the tokens earned by the answer just recorded:
// a token per questionsPerToken milestone, plus streak bonuses at exactly 3
// and 5 and then every streakMilestone-th streak after 5.
func (e *GameEngine) tokenRewards(session *models.GameSession) int {
	effort := e.cfg.Tokens.EffortBonus
	streaks := e.cfg.Tokens.StreakBonuses
	tokens := 0

	if effort.QuestionsPerToken > 0 && session.QuestionsAnswered%effort.QuestionsPerToken == 0 {
		tokens += effort.TokenReward
	}

	switch {
	case session.CurrentStreak == 3:
		tokens += streaks.Streak3
	case session.CurrentStreak == 5:
		tokens += streaks.Streak5
	case session.CurrentStreak > 5 && streaks.StreakMilestone > 0 &&
		session.CurrentStreak%streaks.StreakMilestone == 0:
		tokens++
	}

	return tokens
}

// EndSession finalizes the active session: applies the session-end bonuses,
// folds the totals into the lifetime stats, appends the frozen session to
// history, forwards it to club-progress bookkeeping and clears the current
// reference. Returns nil when no session is active.
func (e *GameEngine) EndSession() *models.GameSession {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.endSessionLocked()
}

func (e *GameEngine) endSessionLocked() *models.GameSession {
	session := e.state.CurrentSession
	if session == nil {
		return nil
	}

	now := time.Now()
	session.EndTime = &now
	session.IsActive = false

	bonus := e.cfg.Tokens.SessionEndBonus
	if session.QuestionsAnswered >= bonus.MinimumQuestions {
		session.TokensEarned += bonus.ActivityTokens

		accuracy := float64(session.CorrectAnswers) / float64(session.QuestionsAnswered) * 100
		if accuracy >= bonus.AccuracyThreshold {
			session.TokensEarned += bonus.AccuracyTokens
		}
	}

	stats := &e.state.GlobalStats
	e.state.TotalCoins += session.CoinsEarned
	stats.TotalGamesPlayed++
	stats.TotalQuestionsAnswered += session.QuestionsAnswered
	stats.TotalCorrectAnswers += session.CorrectAnswers
	if session.BestStreak > stats.BestOverallStreak {
		stats.BestOverallStreak = session.BestStreak
	}
	stats.TotalTimePlayedMinutes += session.EndTime.Sub(session.StartTime).Minutes()

	e.state.SessionHistory = append(e.state.SessionHistory, *session)
	e.addSessionProgressLocked(session)

	e.state.CurrentSession = nil
	e.dirty = true
	return session
}

// SessionTimeRemaining derives the cosmetic countdown in seconds from the
// session start and the configured duration. Purely informational; nothing
// gameplay-affecting reads it.
func (e *GameEngine) SessionTimeRemaining() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.state.CurrentSession
	if session == nil {
		return 0
	}
	total := float64(e.cfg.Session.DurationMinutes * 60)
	elapsed := time.Since(session.StartTime).Seconds()
	if remaining := total - elapsed; remaining > 0 {
		return remaining
	}
	return 0
}
