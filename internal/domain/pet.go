package domain

import "time"

// PetTier is the rarity bucket a pet was drawn from.
type PetTier string

const (
	TierCommon    PetTier = "common"
	TierUncommon  PetTier = "uncommon"
	TierRare      PetTier = "rare"
	TierEpic      PetTier = "epic"
	TierLegendary PetTier = "legendary"
)

// Valid reports whether t is a known pet tier.
func (t PetTier) Valid() bool {
	switch t {
	case TierCommon, TierUncommon, TierRare, TierEpic, TierLegendary:
		return true
	}
	return false
}

// Pet is a creature owned by an account. At most one pet per owner may be
// active at a time; only active pets accrue passive level growth.
type Pet struct {
	ID         int       `json:"pet_id"`
	OwnerID    string    `json:"owner_id"`
	Species    string    `json:"species"`
	Tier       PetTier   `json:"tier"`
	Name       string    `json:"pet_name"`
	Level      float64   `json:"level"`
	AcquiredAt time.Time `json:"acquired_at"`
	IsActive   bool      `json:"is_active"`
}

// FeedGain returns the level gain for feeding a pet at the given level.
// Feeding helps more at low levels and bottoms out at 0.2.
func FeedGain(level float64) float64 {
	gain := 2.0 - level*0.1
	if gain < 0.2 {
		return 0.2
	}
	return gain
}

// HourlyGrowthIncrement is the per-hour level gain of an active pet:
// 1.1 levels per day spread over 24 hourly passes.
const HourlyGrowthIncrement = 1.1 / 24
