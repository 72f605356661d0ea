package lootbox

// Rarity is the outcome bucket of one box draw.
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityEpic     Rarity = "epic"
)

// Ordered thresholds for a single uniform draw in [0,1); first match wins.
const (
	epicThreshold     = 0.025
	rareThreshold     = 0.10
	uncommonThreshold = 0.40
)

// ResolveRarity maps one draw onto its rarity bucket.
func ResolveRarity(draw float64) Rarity {
	switch {
	case draw < epicThreshold:
		return RarityEpic
	case draw < rareThreshold:
		return RarityRare
	case draw < uncommonThreshold:
		return RarityUncommon
	}
	return RarityCommon
}
