package models

type StaffEffect string

const (
	EffectXPBoost      StaffEffect = "xp_boost"
	EffectSecondChance StaffEffect = "second_chance"
	EffectBetterPacks  StaffEffect = "better_packs"
	EffectStaminaBoost StaffEffect = "stamina_boost"
	EffectTacticalTime StaffEffect = "tactical_time"
)

// StaffMember is a fixed catalog entry; ownership is tracked separately as a
// set of ids. Cost is in medals.
type StaffMember struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	Description string      `json:"description"`
	Cost        int         `json:"cost"`
	Icon        string      `json:"icon"`
	EffectType  StaffEffect `json:"effect_type"`
	EffectValue float64     `json:"effect_value"`
}

// AvailableStaff is the full hireable roster. There is no "fire" operation;
// hiring is one-way.
var AvailableStaff = []StaffMember{
	{
		ID: "head_coach", Name: "Hoofdtrainer", Role: "Trainer",
		Description: "+10% XP na elke sessie",
		Cost:        100, Icon: "👔",
		EffectType: EffectXPBoost, EffectValue: 0.1,
	},
	{
		ID: "keeper_coach", Name: "Keeperstrainer", Role: "Trainer",
		Description: "1x per wedstrijd 'Tweede Kans' bij een fout antwoord",
		Cost:        75, Icon: "🧤",
		EffectType: EffectSecondChance, EffectValue: 1,
	},
	{
		ID: "scout", Name: "Meester Scout", Role: "Scout",
		Description: "+20% kans op Silver/Gold kaarten in packs",
		Cost:        150, Icon: "🔭",
		EffectType: EffectBetterPacks, EffectValue: 0.2,
	},
	{
		ID: "physio", Name: "Piet de Fysio", Role: "Medisch",
		Description: "Spelers herstellen sneller",
		Cost:        50, Icon: "🩹",
		EffectType: EffectStaminaBoost, EffectValue: 1,
	},
	{
		ID: "analyst", Name: "Video Analist", Role: "Staf",
		Description: "+5 seconden denktijd bij moeilijke sommen",
		Cost:        200, Icon: "💻",
		EffectType: EffectTacticalTime, EffectValue: 5,
	},
}

// StaffByID looks up a catalog entry; nil when the id is unknown.
func StaffByID(id string) *StaffMember {
	for i := range AvailableStaff {
		if AvailableStaff[i].ID == id {
			return &AvailableStaff[i]
		}
	}
	return nil
}
