package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgAccountNotFound = "account not found"

	// Currency errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgDailyLimitReached = "daily give limit reached"

	// Inventory errors
	ErrMsgItemNotOwned = "item not owned"

	// Catalog errors
	ErrMsgCatalogMissing = "item definition not found"
	ErrMsgAlreadyEnchanted = "item is already enchanted"

	// Pet errors
	ErrMsgPetNotOwned  = "pet not owned"
	ErrMsgNoActivePet  = "no active pet"
	ErrMsgNoFoodOwned  = "no pet food owned"

	// Crafting errors
	ErrMsgAlreadyCrafting = "a craft job is already in progress"
	ErrMsgNoActiveJob     = "no active craft job"
	ErrMsgCraftNotReady   = "craft job is not ready"

	// Transfer errors
	ErrMsgInvalidRecipient = "invalid recipient"
	ErrMsgNoBoxOwned       = "no loot box owned"

	// Purchase errors
	ErrMsgExternalEffectFailed = "external effect failed"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Account errors
	ErrAccountNotFound = errors.New(ErrMsgAccountNotFound)

	// Currency errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrDailyLimitReached = errors.New(ErrMsgDailyLimitReached)

	// Inventory errors
	ErrItemNotOwned = errors.New(ErrMsgItemNotOwned)

	// Catalog errors
	ErrCatalogMissing   = errors.New(ErrMsgCatalogMissing)
	ErrAlreadyEnchanted = errors.New(ErrMsgAlreadyEnchanted)

	// Pet errors
	ErrPetNotOwned = errors.New(ErrMsgPetNotOwned)
	ErrNoActivePet = errors.New(ErrMsgNoActivePet)
	ErrNoFoodOwned = errors.New(ErrMsgNoFoodOwned)

	// Crafting errors
	ErrAlreadyCrafting = errors.New(ErrMsgAlreadyCrafting)
	ErrNoActiveJob     = errors.New(ErrMsgNoActiveJob)
	ErrCraftNotReady   = errors.New(ErrMsgCraftNotReady)

	// Transfer errors
	ErrInvalidRecipient = errors.New(ErrMsgInvalidRecipient)
	ErrNoBoxOwned       = errors.New(ErrMsgNoBoxOwned)

	// Purchase errors
	// ErrExternalEffectFailed marks a non-ledger side effect (e.g. role grant)
	// that failed after currency was tentatively committed; the coordinator
	// must roll the currency change back before surfacing it.
	ErrExternalEffectFailed = errors.New(ErrMsgExternalEffectFailed)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
