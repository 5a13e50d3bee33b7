package services

import (
	"voetbal-game-server/models"
)

// Staff store: a fixed hireable catalog and a grow-only owned set.

// HireStaff adds a staff member to the owned set. Fails when the id is not in
// the catalog or already owned. Hiring is one-way; there is no fire
// operation. The medal cost is the caller's concern (see HireStaffPaying).
func (e *GameEngine) HireStaff(staffID string) bool {
	if models.StaffByID(staffID) == nil {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.hasStaffLocked(staffID) {
		return false
	}
	e.state.OwnedStaffIDs = append(e.state.OwnedStaffIDs, staffID)
	e.dirty = true
	return true
}

// HireStaffPaying checks ownership, deducts the catalog cost from the medal
// wallet and then hires; no mutation happens on any failure.
func (e *GameEngine) HireStaffPaying(staffID string) bool {
	staff := models.StaffByID(staffID)
	if staff == nil {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.hasStaffLocked(staffID) {
		return false
	}
	if !e.spendMedalsLocked(staff.Cost) {
		return false
	}
	e.state.OwnedStaffIDs = append(e.state.OwnedStaffIDs, staffID)
	e.dirty = true
	return true
}

// HasStaff reports ownership of a staff id.
func (e *GameEngine) HasStaff(staffID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hasStaffLocked(staffID)
}

func (e *GameEngine) hasStaffLocked(staffID string) bool {
	for _, id := range e.state.OwnedStaffIDs {
		if id == staffID {
			return true
		}
	}
	return false
}

// GetStaffEffect returns the effect magnitude of the first owned staff member
// with the given effect type, 0 when none is owned.
func (e *GameEngine) GetStaffEffect(effect models.StaffEffect) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.staffEffect(effect)
}

// OwnedStaff lists the owned catalog entries.
func (e *GameEngine) OwnedStaff() []models.StaffMember {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []models.StaffMember
	for _, id := range e.state.OwnedStaffIDs {
		if s := models.StaffByID(id); s != nil {
			out = append(out, *s)
		}
	}
	return out
}
