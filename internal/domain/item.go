package domain

import "fmt"

// ItemKind is the closed set of item categories. Purchase and use behavior
// branches on the kind; role link ids are valid only on KindRole items.
type ItemKind string

const (
	KindRole            ItemKind = "role"
	KindPetBoxCommon    ItemKind = "pet_box_common"
	KindPetBoxRare      ItemKind = "pet_box_rare"
	KindPetBoxLegendary ItemKind = "pet_box_legendary"
	KindMysteryBox      ItemKind = "mystery_box"
	KindRenameScroll    ItemKind = "rename_scroll"
	KindPetFood         ItemKind = "pet_food"
	KindWeapon          ItemKind = "weapon"
	KindArmor           ItemKind = "armor"
	KindMaterial        ItemKind = "material"
)

// Valid reports whether k is a known item kind.
func (k ItemKind) Valid() bool {
	switch k {
	case KindRole, KindPetBoxCommon, KindPetBoxRare, KindPetBoxLegendary,
		KindMysteryBox, KindRenameScroll, KindPetFood, KindWeapon, KindArmor,
		KindMaterial:
		return true
	}
	return false
}

// PetTier returns the pet tier granted by a pet box kind, or "" if k is not
// a pet box.
func (k ItemKind) PetTier() PetTier {
	switch k {
	case KindPetBoxCommon:
		return TierCommon
	case KindPetBoxRare:
		return TierRare
	case KindPetBoxLegendary:
		return TierLegendary
	}
	return ""
}

// Item is a catalog item definition, shared across all inventories.
type Item struct {
	ID          int      `json:"item_id"`
	Name        string   `json:"item_name"`
	Description string   `json:"item_description"`
	Cost        int      `json:"cost"`
	Kind        ItemKind `json:"kind"`
	RoleLinkID  string   `json:"role_link_id,omitempty"`
	Seasonal    bool     `json:"seasonal"`
}

// Validate checks the kind/field pairing invariants of an item definition.
func (i *Item) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("%w: item name required", ErrInvalidInput)
	}
	if i.Cost < 0 {
		return fmt.Errorf("%w: negative cost %d", ErrInvalidInput, i.Cost)
	}
	if !i.Kind.Valid() {
		return fmt.Errorf("%w: unknown item kind %q", ErrInvalidInput, i.Kind)
	}
	if i.Kind == KindRole && i.RoleLinkID == "" {
		return fmt.Errorf("%w: role item %q has no role link", ErrInvalidInput, i.Name)
	}
	if i.Kind != KindRole && i.RoleLinkID != "" {
		return fmt.Errorf("%w: non-role item %q carries a role link", ErrInvalidInput, i.Name)
	}
	return nil
}
