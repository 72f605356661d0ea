package pet

import (
	"time"

	"github.com/dotworks/PixieBot_Go/internal/domain"
)

// SpeciesDef is one entry of a tier's species pool.
type SpeciesDef struct {
	Name string
	Lore string
}

// speciesPools holds the species rolled per tier. Box-driven grants pick
// uniformly within the tier.
var speciesPools = map[domain.PetTier][]SpeciesDef{
	domain.TierCommon: {
		{"Moss Sprite", "A clump of moss that learned to blink."},
		{"Pebble Golem", "Fits in a pocket. Complains about it."},
		{"Dust Bunny", "Multiplies when nobody sweeps."},
		{"Garden Slime", "Eats weeds, mostly. Mostly."},
	},
	domain.TierUncommon: {
		{"Ember Fox", "Leaves warm pawprints on cold mornings."},
		{"River Otterling", "Hoards smooth stones and compliments."},
		{"Thistle Imp", "Prickly outside, prickly inside too."},
	},
	domain.TierRare: {
		{"Storm Owl", "Its feathers smell faintly of rain."},
		{"Crystal Fawn", "Chimes softly when it walks."},
		{"Shadow Cat", "Only half of it is ever in the room."},
	},
	domain.TierEpic: {
		{"Starwhale Calf", "Swims through air like deep water."},
		{"Obsidian Drake", "Sleeps in fireplaces, cold ones included."},
	},
	domain.TierLegendary: {
		{"Aurora Phoenix", "Molts in colors that have no names."},
		{"Eclipse Dragon", "Arrives exactly when it is least expected."},
	},
}

// Pool returns the species pool for a tier.
func Pool(tier domain.PetTier) []SpeciesDef {
	return speciesPools[tier]
}

// Roll builds a new pet of the given tier with a uniformly drawn species.
// The caller persists it; IsActive is left false.
func Roll(ownerID string, tier domain.PetTier, rnd func() float64, now time.Time) *domain.Pet {
	pool := speciesPools[tier]
	idx := int(rnd() * float64(len(pool)))
	if idx >= len(pool) {
		idx = len(pool) - 1
	}
	return &domain.Pet{
		OwnerID:    ownerID,
		Species:    pool[idx].Name,
		Tier:       tier,
		Level:      1,
		AcquiredAt: now,
	}
}
