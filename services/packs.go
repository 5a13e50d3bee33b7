package services

import (
	"errors"
	"fmt"

	"voetbal-game-server/models"
)

// Pack opening: spend club tokens on a tier, roll rarities, draw players
// from the club roster.

var (
	ErrUnknownPackTier    = errors.New("unknown pack tier")
	ErrPackLocked         = errors.New("pack tier not unlocked for this club")
	ErrInsufficientTokens = errors.New("not enough tokens")
	ErrEmptyRoster        = errors.New("club has no players in the catalog")
)

// rarityRollOrder fixes the accumulation order of the weight roll.
var rarityRollOrder = []models.PlayerRarity{
	models.RarityCommon,
	models.RarityUncommon,
	models.RarityRare,
	models.RarityLegendary,
}

// OpenPack buys and opens one pack for a club. The tier must be unlocked in
// the club's ledger and the token cost is deducted all-or-nothing before any
// card is drawn. Each card is a rarity roll followed by a uniform draw from
// the club's roster of that rarity (the whole roster when the rarity bucket
// is empty); every drawn card lands in the collection.
func (e *GameEngine) OpenPack(clubID int, tier models.PackType) ([]models.PlayerCard, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pack, ok := e.cfg.Packs[string(tier)]
	if !ok {
		return nil, ErrUnknownPackTier
	}

	progress := e.clubProgressLocked(clubID)
	if !progress.HasUnlocked(tier) {
		return nil, fmt.Errorf("%w: %s for club %d", ErrPackLocked, tier, clubID)
	}

	if e.catalog == nil || !e.catalog.IsInitialized() {
		return nil, ErrEmptyRoster
	}
	roster := e.catalog.GetPlayersByClub(clubID)
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}

	if !e.spendTokensLocked(clubID, pack.Cost) {
		return nil, ErrInsufficientTokens
	}

	weights := e.rarityWeightsLocked()
	cards := make([]models.PlayerCard, 0, pack.CardCount)
	for i := 0; i < pack.CardCount; i++ {
		rarity := rollRarity(weights, e.rng)
		player := drawFromRoster(roster, rarity, e.rng)
		cards = append(cards, *e.addPlayerCardLocked(player))
	}

	e.dirty = true
	return cards, nil
}

// rarityWeightsLocked applies the scout perk: the non-common weights scale by
// (1 + effect), shifting packs toward better cards.
func (e *GameEngine) rarityWeightsLocked() map[models.PlayerRarity]float64 {
	boost := e.staffEffect(models.EffectBetterPacks)
	weights := make(map[models.PlayerRarity]float64, len(rarityRollOrder))
	for _, r := range rarityRollOrder {
		w := e.cfg.Rarity.Distribution[string(r)]
		if r != models.RarityCommon {
			w *= 1 + boost
		}
		weights[r] = w
	}
	return weights
}

// rollRarity samples a rarity by cumulative weight. The roll lands strictly
// within [0, total), so a zero-weight rarity can never come up.
func rollRarity(weights map[models.PlayerRarity]float64, rng RandomSource) models.PlayerRarity {
	total := 0.0
	for _, r := range rarityRollOrder {
		total += weights[r]
	}
	if total <= 0 {
		return models.RarityCommon
	}

	roll := rng.Float64() * total
	accumulated := 0.0
	for _, r := range rarityRollOrder {
		accumulated += weights[r]
		if weights[r] > 0 && roll <= accumulated {
			return r
		}
	}
	return rarityRollOrder[len(rarityRollOrder)-1]
}

// drawFromRoster picks a uniform player of the rolled rarity, falling back to
// the full roster when the club has nobody of that rarity.
func drawFromRoster(roster []models.Player, rarity models.PlayerRarity, rng RandomSource) models.Player {
	var bucket []models.Player
	for _, p := range roster {
		if p.Rarity == rarity {
			bucket = append(bucket, p)
		}
	}
	if len(bucket) == 0 {
		bucket = roster
	}
	return bucket[rng.IntN(len(bucket))]
}
