package services

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"voetbal-game-server/config"
	"voetbal-game-server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StateManager hands out one GameEngine per external user id, lazily
// restoring from the snapshot table. Persistence is the snapshot/restore
// contract only: the manager writes whole JSON payloads and never reaches
// into them.
type StateManager struct {
	DB *gorm.DB

	cfg     *config.BalanceConfig
	tables  map[int]int
	catalog *CatalogService
	rng     RandomSource

	mu      sync.Mutex
	engines map[string]*GameEngine
}

func NewStateManager(db *gorm.DB, cfg *config.BalanceConfig, tables map[int]int, catalog *CatalogService, rng RandomSource) *StateManager {
	if tables == nil {
		tables = config.DefaultTableToClubMapping
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	return &StateManager{
		DB:      db,
		cfg:     cfg,
		tables:  tables,
		catalog: catalog,
		rng:     rng,
		engines: make(map[string]*GameEngine),
	}
}

// Engine returns the user's engine, restoring a stored snapshot or creating
// a fresh state when none exists (idempotent per user).
func (m *StateManager) Engine(externalUserID string) (*GameEngine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if engine, ok := m.engines[externalUserID]; ok {
		return engine, nil
	}

	var snapshot models.GameStateSnapshot
	err := m.DB.Where("external_user_id = ?", externalUserID).First(&snapshot).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		engine := NewGameEngine(externalUserID, m.cfg, m.tables, m.catalog, m.rng)
		m.engines[externalUserID] = engine
		return engine, nil
	case err != nil:
		return nil, fmt.Errorf("load snapshot for %s: %w", externalUserID, err)
	}

	engine, err := RestoreGameEngine(externalUserID, snapshot.Payload, m.cfg, m.tables, m.catalog, m.rng)
	if err != nil {
		return nil, err
	}
	m.engines[externalUserID] = engine
	return engine, nil
}

// Flush persists one user's state when it has unsaved changes.
func (m *StateManager) Flush(externalUserID string) error {
	m.mu.Lock()
	engine, ok := m.engines[externalUserID]
	m.mu.Unlock()
	if !ok || !engine.Dirty() {
		return nil
	}
	return m.save(engine)
}

// FlushAll persists every dirty engine; errors are logged per user so one
// failing row does not block the rest.
func (m *StateManager) FlushAll() int {
	m.mu.Lock()
	engines := make([]*GameEngine, 0, len(m.engines))
	for _, e := range m.engines {
		engines = append(engines, e)
	}
	m.mu.Unlock()

	flushed := 0
	for _, engine := range engines {
		if !engine.Dirty() {
			continue
		}
		if err := m.save(engine); err != nil {
			log.Printf("[StateManager] failed to save state for %s: %v", engine.UserID(), err)
			continue
		}
		flushed++
	}
	return flushed
}

func (m *StateManager) save(engine *GameEngine) error {
	payload, err := engine.Snapshot()
	if err != nil {
		return err
	}

	err = m.DB.Transaction(func(tx *gorm.DB) error {
		var snapshot models.GameStateSnapshot
		err := tx.Where("external_user_id = ?", engine.UserID()).First(&snapshot).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			snapshot = models.GameStateSnapshot{
				ID:             uuid.NewString(),
				ExternalUserID: engine.UserID(),
				Payload:        payload,
			}
			return tx.Create(&snapshot).Error
		}
		if err != nil {
			return err
		}
		snapshot.Payload = payload
		return tx.Save(&snapshot).Error
	})
	if err != nil {
		return err
	}

	engine.MarkClean()
	return nil
}
