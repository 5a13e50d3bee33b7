package models

import "time"

// TeamSlot is one formation position; PlayerID is nil while empty.
type TeamSlot struct {
	Position   PlayerPosition `json:"position"`
	SlotNumber int            `json:"slot_number"`
	PlayerID   *int           `json:"player_id,omitempty"`
}

// Team is a named formation instance. A player id occupies at most one slot;
// TotalRating is the rounded mean rating over filled slots, 0 when empty.
type Team struct {
	Name        string     `json:"name"`
	Slots       []TeamSlot `json:"slots"`
	TotalRating int        `json:"total_rating"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Clone returns a deep copy so saved teams are not aliased by the current one.
func (t *Team) Clone() *Team {
	cp := *t
	cp.Slots = make([]TeamSlot, len(t.Slots))
	copy(cp.Slots, t.Slots)
	for i, s := range t.Slots {
		if s.PlayerID != nil {
			id := *s.PlayerID
			cp.Slots[i].PlayerID = &id
		}
	}
	return &cp
}
