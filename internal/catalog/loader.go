package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/validation"
)

//go:embed configs
var configFS embed.FS

// Config file and schema paths inside configFS.
const (
	forgeablesPath          = "configs/forgeables.json"
	forgeablesSchemaPath    = "configs/schemas/forgeables.schema.json"
	enchantmentsPath        = "configs/enchantments.json"
	enchantmentsSchemaPath  = "configs/schemas/enchantments.schema.json"
)

// Sentinel errors for config loading
var (
	ErrDuplicateName = errors.New("duplicate name in config")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Recipe is one forgeable equipment definition. MinimumMinutes is the
// shortest commitment that avoids the shoddy-quality penalty; BaseValue is
// the catalog cost of the standard-quality output.
type Recipe struct {
	Name           string `json:"name"`
	Kind           string `json:"kind"`
	MinimumMinutes int    `json:"minimum_minutes"`
	BaseValue      int    `json:"base_value"`
	Description    string `json:"description"`
}

// ItemKind maps the recipe's kind string onto the closed item-kind set.
func (r *Recipe) ItemKind() domain.ItemKind {
	if r.Kind == "armor" {
		return domain.KindArmor
	}
	return domain.KindWeapon
}

// Enchantment is one entry of the enchantment catalog. Suffix is appended to
// the enchanted item's display name.
type Enchantment struct {
	Name        string `json:"name"`
	Suffix      string `json:"suffix"`
	Description string `json:"description"`
}

type recipeConfig struct {
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Recipes     []Recipe `json:"recipes"`
}

type enchantmentConfig struct {
	Version      string        `json:"version"`
	Description  string        `json:"description"`
	Enchantments []Enchantment `json:"enchantments"`
}

// loadConfigs reads, schema-validates and semantically checks the embedded
// recipe and enchantment configs.
func loadConfigs() ([]Recipe, []Enchantment, error) {
	sv := validation.NewSchemaValidator(configFS)

	recipeData, err := configFS.ReadFile(forgeablesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read recipe config: %w", err)
	}
	if err := sv.ValidateBytes(recipeData, forgeablesSchemaPath); err != nil {
		return nil, nil, fmt.Errorf("recipe config: %w", err)
	}
	var rc recipeConfig
	if err := json.Unmarshal(recipeData, &rc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse recipe config: %w", err)
	}

	enchantData, err := configFS.ReadFile(enchantmentsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read enchantment config: %w", err)
	}
	if err := sv.ValidateBytes(enchantData, enchantmentsSchemaPath); err != nil {
		return nil, nil, fmt.Errorf("enchantment config: %w", err)
	}
	var ec enchantmentConfig
	if err := json.Unmarshal(enchantData, &ec); err != nil {
		return nil, nil, fmt.Errorf("failed to parse enchantment config: %w", err)
	}

	if err := validateUnique(recipeNames(rc.Recipes)); err != nil {
		return nil, nil, fmt.Errorf("recipe config: %w", err)
	}
	if err := validateUnique(enchantmentNames(ec.Enchantments)); err != nil {
		return nil, nil, fmt.Errorf("enchantment config: %w", err)
	}

	return rc.Recipes, ec.Enchantments, nil
}

func recipeNames(recipes []Recipe) []string {
	names := make([]string, len(recipes))
	for i, r := range recipes {
		names[i] = r.Name
	}
	return names
}

func enchantmentNames(enchantments []Enchantment) []string {
	names := make([]string, len(enchantments))
	for i, e := range enchantments {
		names[i] = e.Name
	}
	return names
}

func validateUnique(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		seen[name] = true
	}
	return nil
}
