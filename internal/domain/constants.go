package domain

// Well-known item names referenced by transactional flows.
const (
	ItemPetFood         = "Pet Food"
	ItemMysteryBox      = "Mystery Box"
	ItemRenameScroll    = "Pet Rename Scroll"
	ItemPetBoxCommon    = "Common Pet Box"
	ItemPetBoxRare      = "Rare Pet Box"
	ItemPetBoxLegendary = "Legendary Pet Box"
)

// DailyGiveLimit is the maximum number of coins an account may transfer to
// other accounts per calendar day via direct gives.
const DailyGiveLimit = 10000

// MaxCraftDurationMinutes bounds a single craft commitment (24 hours).
const MaxCraftDurationMinutes = 1440

// SellPriceRatio is the fraction of an item's catalog cost paid out when an
// account sells it back to the store.
const SellPriceRatio = 0.5
