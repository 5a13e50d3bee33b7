package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"voetbal-game-server/config"
	"voetbal-game-server/models"
)

// GameEngine owns the full game state of one user: session and battle
// lifecycles, the club ledgers, the card collection, teams, the tournament
// bracket and the staff roster. All mutation goes through its methods; the
// host owns one engine per user and injects it where needed.
//
// State transitions are synchronous functions of current state and inputs.
// The mutex only serializes concurrent HTTP calls; there is no background
// mutation.
type GameEngine struct {
	mu sync.Mutex

	userID  string
	state   *models.GameState
	cfg     *config.BalanceConfig
	tables  map[int]int // table number → club id
	catalog *CatalogService
	rng     RandomSource

	questions *QuestionGenerator

	dirty bool // unsaved changes since last snapshot
}

// NewGameEngine creates an engine with a zeroed state.
func NewGameEngine(userID string, cfg *config.BalanceConfig, tables map[int]int, catalog *CatalogService, rng RandomSource) *GameEngine {
	if rng == nil {
		rng = DefaultRNG()
	}
	if tables == nil {
		tables = config.DefaultTableToClubMapping
	}
	return &GameEngine{
		userID:    userID,
		state:     models.NewGameState(),
		cfg:       cfg,
		tables:    tables,
		catalog:   catalog,
		rng:       rng,
		questions: NewQuestionGenerator(rng),
	}
}

// RestoreGameEngine rebuilds an engine from a snapshot payload. Timestamps
// inside the payload are plain RFC3339 text and are re-parsed here by the
// JSON decoder; nothing assumes they survived as rich values.
func RestoreGameEngine(userID string, payload []byte, cfg *config.BalanceConfig, tables map[int]int, catalog *CatalogService, rng RandomSource) (*GameEngine, error) {
	e := NewGameEngine(userID, cfg, tables, catalog, rng)
	state := models.NewGameState()
	if err := json.Unmarshal(payload, state); err != nil {
		return nil, fmt.Errorf("decode game state for %s: %w", userID, err)
	}
	if state.ClubProgress == nil {
		state.ClubProgress = map[int]*models.ClubProgress{}
	}
	if state.PlayerCards == nil {
		state.PlayerCards = map[int]*models.PlayerCard{}
	}
	e.state = state
	return e, nil
}

// Snapshot serializes the current state for the persistence layer. The dirty
// flag is untouched: the caller marks the engine clean only once the payload
// is durably stored, so a failed save leaves the state eligible for retry.
func (e *GameEngine) Snapshot() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	payload, err := json.Marshal(e.state)
	if err != nil {
		return nil, fmt.Errorf("encode game state for %s: %w", e.userID, err)
	}
	return payload, nil
}

// MarkClean records that the last snapshot reached the store.
func (e *GameEngine) MarkClean() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dirty = false
}

// Dirty reports whether the state changed since the last Snapshot.
func (e *GameEngine) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty
}

// UserID returns the owning external user id.
func (e *GameEngine) UserID() string { return e.userID }

// Questions exposes the engine's question generator.
func (e *GameEngine) Questions() *QuestionGenerator { return e.questions }

// State returns a point-in-time copy of the serializable state, for read-only
// presentation.
func (e *GameEngine) State() models.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return *e.state
}

// staffEffect returns the effect magnitude of the first owned staff member
// with the given effect type, or 0.
func (e *GameEngine) staffEffect(effect models.StaffEffect) float64 {
	for _, id := range e.state.OwnedStaffIDs {
		if s := models.StaffByID(id); s != nil && s.EffectType == effect {
			return s.EffectValue
		}
	}
	return 0
}
