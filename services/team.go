package services

import (
	"math"
	"time"

	"voetbal-game-server/models"
)

// Team builder: formation-slot assignment and rating aggregation over the
// catalog. All failures are soft (false / no-op) so the UI can message them.

// CreateNewTeam builds the configured formation as an empty slot list,
// keeper first, slots numbered from 1, and makes it the current team.
func (e *GameEngine) CreateNewTeam(name string) *models.Team {
	e.mu.Lock()
	defer e.mu.Unlock()

	formation := e.cfg.Team.Formation
	var slots []models.TeamSlot
	slotNumber := 1

	appendSlots := func(position models.PlayerPosition, count int) {
		for i := 0; i < count; i++ {
			slots = append(slots, models.TeamSlot{Position: position, SlotNumber: slotNumber})
			slotNumber++
		}
	}
	appendSlots(models.PositionKeeper, formation.Keepers)
	appendSlots(models.PositionDefender, formation.Defenders)
	appendSlots(models.PositionMidfielder, formation.Midfielders)
	appendSlots(models.PositionAttacker, formation.Attackers)

	team := &models.Team{
		Name:      name,
		Slots:     slots,
		CreatedAt: time.Now(),
	}
	e.state.CurrentTeam = team
	e.dirty = true
	return team
}

// SetPlayerInSlot binds an owned catalog player to a formation slot. Fails
// without mutation when there is no current team, the catalog is not ready,
// the slot or player does not exist, the position does not match, or the
// player already fills another slot.
func (e *GameEngine) SetPlayerInSlot(slotNumber, playerID int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	team := e.state.CurrentTeam
	if team == nil || e.catalog == nil || !e.catalog.IsInitialized() {
		return false
	}

	var slot *models.TeamSlot
	for i := range team.Slots {
		if team.Slots[i].SlotNumber == slotNumber {
			slot = &team.Slots[i]
			break
		}
	}
	if slot == nil {
		return false
	}

	player := e.catalog.GetPlayerByID(playerID)
	if player == nil || player.Position != slot.Position {
		return false
	}

	for i := range team.Slots {
		if team.Slots[i].PlayerID != nil && *team.Slots[i].PlayerID == playerID {
			return false
		}
	}

	id := playerID
	slot.PlayerID = &id
	e.recalcTeamRatingLocked()
	e.dirty = true
	return true
}

// RemovePlayerFromSlot empties a slot and refreshes the team rating.
func (e *GameEngine) RemovePlayerFromSlot(slotNumber int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	team := e.state.CurrentTeam
	if team == nil {
		return
	}
	for i := range team.Slots {
		if team.Slots[i].SlotNumber == slotNumber {
			team.Slots[i].PlayerID = nil
			e.recalcTeamRatingLocked()
			e.dirty = true
			return
		}
	}
}

// recalcTeamRatingLocked sets TotalRating to the rounded mean rating of the
// filled slots, 0 when none are filled.
func (e *GameEngine) recalcTeamRatingLocked() {
	team := e.state.CurrentTeam
	if team == nil || e.catalog == nil || !e.catalog.IsInitialized() {
		return
	}

	total, count := 0, 0
	for _, slot := range team.Slots {
		if slot.PlayerID == nil {
			continue
		}
		if player := e.catalog.GetPlayerByID(*slot.PlayerID); player != nil {
			total += player.Rating
			count++
		}
	}
	if count > 0 {
		team.TotalRating = int(math.Round(float64(total) / float64(count)))
	} else {
		team.TotalRating = 0
	}
}

// SaveCurrentTeam upserts the current team into the saved list by name.
func (e *GameEngine) SaveCurrentTeam() {
	e.mu.Lock()
	defer e.mu.Unlock()

	team := e.state.CurrentTeam
	if team == nil {
		return
	}
	for i := range e.state.SavedTeams {
		if e.state.SavedTeams[i].Name == team.Name {
			e.state.SavedTeams[i] = *team.Clone()
			e.dirty = true
			return
		}
	}
	e.state.SavedTeams = append(e.state.SavedTeams, *team.Clone())
	e.dirty = true
}

// LoadTeam makes a saved team current; no-op when the name is unknown.
func (e *GameEngine) LoadTeam(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.state.SavedTeams {
		if e.state.SavedTeams[i].Name == name {
			e.state.CurrentTeam = e.state.SavedTeams[i].Clone()
			e.dirty = true
			return true
		}
	}
	return false
}

// IsTeamComplete is true iff every slot of the current team is filled.
func (e *GameEngine) IsTeamComplete() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	team := e.state.CurrentTeam
	if team == nil {
		return false
	}
	for _, slot := range team.Slots {
		if slot.PlayerID == nil {
			return false
		}
	}
	return true
}

// TeamStrengthByPosition derives the mean rating per position over the
// current team's filled slots.
func (e *GameEngine) TeamStrengthByPosition() map[models.PlayerPosition]int {
	e.mu.Lock()
	defer e.mu.Unlock()

	strength := map[models.PlayerPosition]int{
		models.PositionKeeper:     0,
		models.PositionDefender:   0,
		models.PositionMidfielder: 0,
		models.PositionAttacker:   0,
	}

	team := e.state.CurrentTeam
	if team == nil || e.catalog == nil || !e.catalog.IsInitialized() {
		return strength
	}

	totals := map[models.PlayerPosition]int{}
	counts := map[models.PlayerPosition]int{}
	for _, slot := range team.Slots {
		if slot.PlayerID == nil {
			continue
		}
		if player := e.catalog.GetPlayerByID(*slot.PlayerID); player != nil {
			totals[slot.Position] += player.Rating
			counts[slot.Position]++
		}
	}
	for pos, count := range counts {
		if count > 0 {
			strength[pos] = int(math.Round(float64(totals[pos]) / float64(count)))
		}
	}
	return strength
}
