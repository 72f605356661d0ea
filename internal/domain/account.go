package domain

import "time"

// Currency identifies one of the three account balances.
type Currency string

const (
	CurrencyCoins        Currency = "coins"
	CurrencyPixiePouches Currency = "pixie_pouches"
	CurrencyStardust     Currency = "stardust"
)

// Valid reports whether c is a known currency.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyCoins, CurrencyPixiePouches, CurrencyStardust:
		return true
	}
	return false
}

// Account is the owner of currency, inventory, pets and craft jobs. One row
// per platform user, created lazily on first reference.
type Account struct {
	ID           string `json:"account_id"`
	Coins        int64  `json:"coins"`
	PixiePouches int64  `json:"pixie_pouches"`
	Stardust     int64  `json:"stardust"`

	ForgeLevel   int `json:"forge_level"`
	EnchantLevel int `json:"enchant_level"`

	DailyGiveAmount int64     `json:"daily_give_amount"`
	DailyGiveDate   time.Time `json:"daily_give_date"`

	LastTextRewardAt  *time.Time `json:"last_text_reward_at,omitempty"`
	LastVoiceRewardAt *time.Time `json:"last_voice_reward_at,omitempty"`
}

// Balance returns the account's balance for the given currency.
func (a *Account) Balance(c Currency) int64 {
	switch c {
	case CurrencyCoins:
		return a.Coins
	case CurrencyPixiePouches:
		return a.PixiePouches
	case CurrencyStardust:
		return a.Stardust
	}
	return 0
}

// InventoryEntry is one stack of a catalog item held by an account.
// A row with quantity <= 0 must never exist; the store deletes it instead.
type InventoryEntry struct {
	AccountID string `json:"account_id"`
	ItemID    int    `json:"item_id"`
	Quantity  int    `json:"quantity"`
}
