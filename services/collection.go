package services

import (
	"errors"
	"time"

	"voetbal-game-server/models"
)

// ErrInvalidPlayer is returned when a card is added for a player without an id.
var ErrInvalidPlayer = errors.New("invalid player provided to AddPlayerCard")

// AddPlayerCard adds a catalog player to the collection. A duplicate
// acquisition bumps the copy count of the existing card; a first copy creates
// the card, stamps the obtained time and recomputes the aggregate stats.
func (e *GameEngine) AddPlayerCard(player models.Player) (*models.PlayerCard, error) {
	if player.ID == 0 {
		return nil, ErrInvalidPlayer
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.addPlayerCardLocked(player), nil
}

func (e *GameEngine) addPlayerCardLocked(player models.Player) *models.PlayerCard {
	if existing, ok := e.state.PlayerCards[player.ID]; ok {
		existing.Copies++
		e.state.CollectionStats.TotalCardsOwned++
		e.dirty = true
		return existing
	}

	card := &models.PlayerCard{
		Player:        player,
		Copies:        1,
		FirstObtained: time.Now(),
	}
	e.state.PlayerCards[player.ID] = card
	e.state.CollectionStats.TotalUniquePlayers++
	e.updateCollectionStatsLocked()
	e.dirty = true
	return card
}

// updateCollectionStatsLocked recomputes the copy total and the completed
// club set. Club completion needs the catalog; when it is not initialized the
// completion check is skipped, not errored.
func (e *GameEngine) updateCollectionStatsLocked() {
	stats := &e.state.CollectionStats

	total := 0
	for _, card := range e.state.PlayerCards {
		total += card.Copies
	}
	stats.TotalCardsOwned = total

	if e.catalog == nil || !e.catalog.IsInitialized() {
		return
	}

	for _, club := range e.catalog.GetAllClubs() {
		roster := e.catalog.GetPlayersByClub(club.ID)
		if len(roster) == 0 {
			continue
		}
		owned := 0
		for _, card := range e.state.PlayerCards {
			if card.ClubID == club.ID {
				owned++
			}
		}
		if owned == len(roster) && !containsInt(stats.CompletedClubs, club.ID) {
			stats.CompletedClubs = append(stats.CompletedClubs, club.ID)
		}
	}
}

// CollectionStats returns the current aggregates.
func (e *GameEngine) CollectionStats() models.CollectionStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.CollectionStats
}

// AllPlayerCards lists every owned card.
func (e *GameEngine) AllPlayerCards() []models.PlayerCard {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.PlayerCard, 0, len(e.state.PlayerCards))
	for _, card := range e.state.PlayerCards {
		out = append(out, *card)
	}
	return out
}

// CardsByClub filters the collection for one club.
func (e *GameEngine) CardsByClub(clubID int) []models.PlayerCard {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []models.PlayerCard
	for _, card := range e.state.PlayerCards {
		if card.ClubID == clubID {
			out = append(out, *card)
		}
	}
	return out
}

// CollectionCompletion is the owned-unique percentage of the full catalog;
// 0 while the catalog is not initialized.
func (e *GameEngine) CollectionCompletion() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.catalog == nil || !e.catalog.IsInitialized() {
		return 0
	}
	total := len(e.catalog.GetAllPlayers())
	if total == 0 {
		return 0
	}
	return float64(e.state.CollectionStats.TotalUniquePlayers) / float64(total) * 100
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
