package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/dotworks/PixieBot_Go/internal/domain"
)

const apiBase = "/api/v1"

// APIClient handles communication with the PixieBot core API.
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client.
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey: apiKey,
	}
}

// doRequest performs an HTTP request with retry logic.
// Only server errors (5xx) and transport failures are retried.
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := fmt.Sprintf("%s%s%s", c.BaseURL, apiBase, path)

	maxRetries := 3
	retryDelay := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, target, bytes.NewBuffer(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeInto decodes a response into out, surfacing the API error message
// on non-2xx statuses.
func decodeInto(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("API error: %s", errResp.Error)
		}
		return fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// InventoryItem is a single inventory line as returned by the API.
type InventoryItem struct {
	Name     string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// PurchaseResult mirrors the store buy response.
type PurchaseResult struct {
	ItemName    string `json:"item_name"`
	Quantity    int    `json:"quantity"`
	CoinsSpent  int64  `json:"coins_spent"`
	RoleGranted bool   `json:"role_granted"`
}

// SaleResult mirrors the store sell response.
type SaleResult struct {
	ItemName    string `json:"item_name"`
	ItemsSold   int    `json:"items_sold"`
	CoinsGained int64  `json:"coins_gained"`
}

// TransferResult mirrors the coin give response.
type TransferResult struct {
	Amount         int64 `json:"amount"`
	RemainingToday int64 `json:"remaining_today"`
}

// GambleResult mirrors the gamble response.
type GambleResult struct {
	Tier       string `json:"tier"`
	Multiplier int64  `json:"multiplier"`
	Stake      int64  `json:"stake"`
	Winnings   int64  `json:"winnings"`
	NewBalance int64  `json:"new_balance"`
}

// LootBoxResult mirrors the loot box open response.
type LootBoxResult struct {
	Rarity         string      `json:"rarity"`
	CoinsGained    int64       `json:"coins_gained"`
	PouchesGained  int64       `json:"pouches_gained"`
	StardustGained int64       `json:"stardust_gained"`
	ItemGranted    string      `json:"item_granted"`
	PetGranted     *domain.Pet `json:"pet_granted"`
}

// CraftStarted mirrors the forge start response.
type CraftStarted struct {
	JobID             string    `json:"job_id"`
	Recipe            string    `json:"recipe"`
	CommittedDuration int       `json:"committed_duration_minutes"`
	EstimatedWait     float64   `json:"estimated_wait_minutes"`
	ReadyAt           time.Time `json:"ready_at"`
}

// CraftResult mirrors the forge collect response.
type CraftResult struct {
	ItemName      string `json:"item_name"`
	Quality       string `json:"quality"`
	ItemValue     int    `json:"item_value"`
	XPAwarded     int    `json:"xp_awarded"`
	LevelsGained  int    `json:"levels_gained"`
	NewForgeLevel int    `json:"new_forge_level"`
}

// CraftStatus mirrors the forge status response.
type CraftStatus struct {
	JobID            string  `json:"job_id"`
	Recipe           string  `json:"recipe"`
	ElapsedMinutes   float64 `json:"elapsed_minutes"`
	RemainingMinutes float64 `json:"remaining_minutes"`
	EstimatedWait    float64 `json:"estimated_wait_minutes"`
	Ready            bool    `json:"ready"`
}

// RecipeInfo is a forge recipe as listed by the API.
type RecipeInfo struct {
	Name           string `json:"name"`
	MinimumMinutes int    `json:"minimum_minutes"`
	BaseValue      int    `json:"base_value"`
	Description    string `json:"description"`
}

// EnchantResult mirrors the enchant response.
type EnchantResult struct {
	ItemName        string `json:"item_name"`
	Enchantment     string `json:"enchantment"`
	Quality         string `json:"quality"`
	ItemValue       int    `json:"item_value"`
	XPAwarded       int    `json:"xp_awarded"`
	LevelsGained    int    `json:"levels_gained"`
	NewEnchantLevel int    `json:"new_enchant_level"`
}

// EnchantmentInfo is an enchantment as listed by the API.
type EnchantmentInfo struct {
	Name        string `json:"name"`
	Suffix      string `json:"suffix"`
	Description string `json:"description"`
}

// FeedResult mirrors the pet feed response.
type FeedResult struct {
	PetID    int     `json:"pet_id"`
	Species  string  `json:"species"`
	Gain     float64 `json:"gain"`
	NewLevel float64 `json:"new_level"`
}

// ChatReward mirrors the chat accrual response.
type ChatReward struct {
	Awarded bool  `json:"awarded"`
	Coins   int64 `json:"coins"`
}

// GetAccount retrieves an account by ID.
func (c *APIClient) GetAccount(accountID string) (*domain.Account, error) {
	params := url.Values{}
	params.Set("account_id", accountID)

	resp, err := c.doRequest(http.MethodGet, "/account?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var account domain.Account
	if err := decodeInto(resp, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetInventory retrieves an account's inventory.
func (c *APIClient) GetInventory(accountID string) ([]InventoryItem, error) {
	params := url.Values{}
	params.Set("account_id", accountID)

	resp, err := c.doRequest(http.MethodGet, "/account/inventory?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []InventoryItem `json:"data"`
	}
	if err := decodeInto(resp, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// GetStore retrieves the store listing.
func (c *APIClient) GetStore(seasonal bool) ([]domain.Item, error) {
	path := "/store"
	if seasonal {
		path += "?seasonal=true"
	}

	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []domain.Item `json:"data"`
	}
	if err := decodeInto(resp, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// BuyItem purchases items from the store.
func (c *APIClient) BuyItem(accountID, itemName string, quantity int) (*PurchaseResult, error) {
	req := map[string]interface{}{
		"account_id": accountID,
		"item_name":  itemName,
		"quantity":   quantity,
	}

	resp, err := c.doRequest(http.MethodPost, "/store/buy", req)
	if err != nil {
		return nil, err
	}

	var result PurchaseResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SellItem sells items back to the store.
func (c *APIClient) SellItem(accountID, itemName string, quantity int) (*SaleResult, error) {
	req := map[string]interface{}{
		"account_id": accountID,
		"item_name":  itemName,
		"quantity":   quantity,
	}

	resp, err := c.doRequest(http.MethodPost, "/store/sell", req)
	if err != nil {
		return nil, err
	}

	var result SaleResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GiveCoins transfers coins between accounts.
func (c *APIClient) GiveCoins(fromID, toID string, amount int64) (*TransferResult, error) {
	req := map[string]interface{}{
		"from_account_id": fromID,
		"to_account_id":   toID,
		"amount":          amount,
	}

	resp, err := c.doRequest(http.MethodPost, "/coins/give", req)
	if err != nil {
		return nil, err
	}

	var result TransferResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GiftItem transfers a single item between accounts.
func (c *APIClient) GiftItem(fromID, toID, itemName string) error {
	req := map[string]interface{}{
		"from_account_id": fromID,
		"to_account_id":   toID,
		"item_name":       itemName,
	}

	resp, err := c.doRequest(http.MethodPost, "/item/gift", req)
	if err != nil {
		return err
	}
	return decodeInto(resp, nil)
}

// Gamble wagers coins on a weighted outcome.
func (c *APIClient) Gamble(accountID string, stake int64) (*GambleResult, error) {
	req := map[string]interface{}{
		"account_id": accountID,
		"stake":      stake,
	}

	resp, err := c.doRequest(http.MethodPost, "/gamble", req)
	if err != nil {
		return nil, err
	}

	var result GambleResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// OpenBox opens a mystery box from the account's inventory.
func (c *APIClient) OpenBox(accountID string) (*LootBoxResult, error) {
	req := map[string]interface{}{
		"account_id": accountID,
	}

	resp, err := c.doRequest(http.MethodPost, "/lootbox/open", req)
	if err != nil {
		return nil, err
	}

	var result LootBoxResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// StartCraft begins a forge job.
func (c *APIClient) StartCraft(accountID, recipe string, durationMinutes int) (*CraftStarted, error) {
	req := map[string]interface{}{
		"account_id":       accountID,
		"recipe":           recipe,
		"duration_minutes": durationMinutes,
	}

	resp, err := c.doRequest(http.MethodPost, "/forge/start", req)
	if err != nil {
		return nil, err
	}

	var result CraftStarted
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CollectCraft collects a finished forge job.
func (c *APIClient) CollectCraft(accountID string) (*CraftResult, error) {
	req := map[string]interface{}{
		"account_id": accountID,
	}

	resp, err := c.doRequest(http.MethodPost, "/forge/collect", req)
	if err != nil {
		return nil, err
	}

	var result CraftResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetCraftStatus reports progress of the account's active forge job.
func (c *APIClient) GetCraftStatus(accountID string) (*CraftStatus, error) {
	params := url.Values{}
	params.Set("account_id", accountID)

	resp, err := c.doRequest(http.MethodGet, "/forge/status?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var status CraftStatus
	if err := decodeInto(resp, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetRecipes lists the available forge recipes.
func (c *APIClient) GetRecipes() ([]RecipeInfo, error) {
	resp, err := c.doRequest(http.MethodGet, "/forge/recipes", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []RecipeInfo `json:"data"`
	}
	if err := decodeInto(resp, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// Enchant applies an enchantment to an owned item.
func (c *APIClient) Enchant(accountID, itemName, enchantment string) (*EnchantResult, error) {
	req := map[string]interface{}{
		"account_id":  accountID,
		"item_name":   itemName,
		"enchantment": enchantment,
	}

	resp, err := c.doRequest(http.MethodPost, "/enchant", req)
	if err != nil {
		return nil, err
	}

	var result EnchantResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListEnchantments lists the available enchantments.
func (c *APIClient) ListEnchantments() ([]EnchantmentInfo, error) {
	resp, err := c.doRequest(http.MethodGet, "/enchant/list", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []EnchantmentInfo `json:"data"`
	}
	if err := decodeInto(resp, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// ListPets lists all pets owned by an account.
func (c *APIClient) ListPets(accountID string) ([]domain.Pet, error) {
	params := url.Values{}
	params.Set("account_id", accountID)

	resp, err := c.doRequest(http.MethodGet, "/pet/list?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []domain.Pet `json:"data"`
	}
	if err := decodeInto(resp, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// GetActivePet retrieves the account's active pet.
func (c *APIClient) GetActivePet(accountID string) (*domain.Pet, error) {
	params := url.Values{}
	params.Set("account_id", accountID)

	resp, err := c.doRequest(http.MethodGet, "/pet/active?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var pet domain.Pet
	if err := decodeInto(resp, &pet); err != nil {
		return nil, err
	}
	return &pet, nil
}

// SetActivePet activates one of the account's pets.
func (c *APIClient) SetActivePet(accountID string, petID int) (*domain.Pet, error) {
	req := map[string]interface{}{
		"account_id": accountID,
		"pet_id":     petID,
	}

	resp, err := c.doRequest(http.MethodPost, "/pet/activate", req)
	if err != nil {
		return nil, err
	}

	var pet domain.Pet
	if err := decodeInto(resp, &pet); err != nil {
		return nil, err
	}
	return &pet, nil
}

// OpenPetBox consumes one pet box and returns the granted pet.
func (c *APIClient) OpenPetBox(accountID, boxName string) (*domain.Pet, error) {
	req := map[string]interface{}{
		"account_id": accountID,
		"box_name":   boxName,
	}

	resp, err := c.doRequest(http.MethodPost, "/pet/box/open", req)
	if err != nil {
		return nil, err
	}

	var pet domain.Pet
	if err := decodeInto(resp, &pet); err != nil {
		return nil, err
	}
	return &pet, nil
}

// FeedPet feeds the account's active pet.
func (c *APIClient) FeedPet(accountID string) (*FeedResult, error) {
	req := map[string]interface{}{
		"account_id": accountID,
	}

	resp, err := c.doRequest(http.MethodPost, "/pet/feed", req)
	if err != nil {
		return nil, err
	}

	var result FeedResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RenamePet renames one of the account's pets.
func (c *APIClient) RenamePet(accountID string, petID int, name string) error {
	req := map[string]interface{}{
		"account_id": accountID,
		"pet_id":     petID,
		"pet_name":   name,
	}

	resp, err := c.doRequest(http.MethodPost, "/pet/rename", req)
	if err != nil {
		return err
	}
	return decodeInto(resp, nil)
}

// RemovePet releases one of the account's pets.
func (c *APIClient) RemovePet(accountID string, petID int) error {
	req := map[string]interface{}{
		"account_id": accountID,
		"pet_id":     petID,
	}

	resp, err := c.doRequest(http.MethodPost, "/pet/remove", req)
	if err != nil {
		return err
	}
	return decodeInto(resp, nil)
}

// SendChatMessage reports a chat message for passive accrual.
func (c *APIClient) SendChatMessage(accountID string, messageLength int) (*ChatReward, error) {
	req := map[string]interface{}{
		"account_id":     accountID,
		"message_length": messageLength,
	}

	resp, err := c.doRequest(http.MethodPost, "/accrual/chat", req)
	if err != nil {
		return nil, err
	}

	var reward ChatReward
	if err := decodeInto(resp, &reward); err != nil {
		return nil, err
	}
	return &reward, nil
}

// VoiceStart reports that an account joined a voice channel.
func (c *APIClient) VoiceStart(accountID string, participants int, streaming bool) error {
	return c.postVoice("/accrual/voice/start", accountID, participants, streaming)
}

// VoiceUpdate reports a change in an account's voice state.
func (c *APIClient) VoiceUpdate(accountID string, participants int, streaming bool) error {
	return c.postVoice("/accrual/voice/update", accountID, participants, streaming)
}

// VoiceStop reports that an account left voice.
func (c *APIClient) VoiceStop(accountID string) error {
	req := map[string]interface{}{
		"account_id": accountID,
	}

	resp, err := c.doRequest(http.MethodPost, "/accrual/voice/stop", req)
	if err != nil {
		return err
	}
	return decodeInto(resp, nil)
}

func (c *APIClient) postVoice(path, accountID string, participants int, streaming bool) error {
	req := map[string]interface{}{
		"account_id":   accountID,
		"participants": participants,
		"streaming":    streaming,
	}

	resp, err := c.doRequest(http.MethodPost, path, req)
	if err != nil {
		return err
	}
	return decodeInto(resp, nil)
}
