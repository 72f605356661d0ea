package discord

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Friendly message constants for Discord responses
const (
	// Economy
	MsgInsufficientFunds = "⚠️ **Not Enough Coins!**\nYou don't have enough coins for this transaction."
	MsgDailyLimitReached = "📅 **Daily Limit Reached**\nYou've hit today's give limit. Try again tomorrow."

	// Items & Inventory
	MsgItemNotFound = "❓ **Item Not Found**\nMaybe check the spelling?"
	MsgItemNotOwned = "🎒 **Not In Your Bag**\nYou don't have that item."
	MsgNoBoxOwned   = "📦 **No Boxes Left**\nBuy one from the store first."

	// Forge
	MsgAlreadyCrafting = "🔨 **Forge Busy**\nYou already have a craft in progress."
	MsgNoActiveJob     = "🔨 **Forge Cold**\nYou have nothing in the forge right now."
	MsgCraftNotReady   = "⏳ **Still Forging**\nYour craft is not ready yet."

	// Pets
	MsgPetNotOwned = "🐾 **Not Your Pet**\nYou don't own that pet."
	MsgNoActivePet = "🐾 **No Active Pet**\nActivate a pet first with /pet-activate."
	MsgNoFoodOwned = "🍖 **No Pet Food**\nBuy some from the store first."

	MsgGenericError = "❌ Something went wrong."
)

var titleCaser = cases.Title(language.English)

// titleCase renders API identifiers like "pixie" or "big_win" for display.
func titleCase(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			out = append(out, ' ')
		} else {
			out = append(out, s[i])
		}
	}
	return titleCaser.String(string(out))
}
