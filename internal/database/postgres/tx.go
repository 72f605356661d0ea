package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dotworks/PixieBot_Go/internal/domain"
)

// storeTx carries every transactional op set over one pgx transaction. Each
// feature repository's BeginTx hands it out under that feature's narrower
// Tx interface.
type storeTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *storeTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *storeTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetAccountForUpdate locks the account row, creating it first if needed.
func (t *storeTx) GetAccountForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	if _, err := t.tx.Exec(ctx,
		`INSERT INTO accounts (account_id) VALUES ($1) ON CONFLICT (account_id) DO NOTHING`,
		accountID); err != nil {
		return nil, fmt.Errorf("failed to ensure account: %w", err)
	}
	account, err := scanAccount(t.tx.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE account_id = $1 FOR UPDATE`,
		accountID))
	if err != nil {
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return account, nil
}

// GetAccountsForUpdate locks several accounts in ascending id order so that
// opposite-direction transfers cannot deadlock each other.
func (t *storeTx) GetAccountsForUpdate(ctx context.Context, accountIDs []string) (map[string]*domain.Account, error) {
	for _, id := range accountIDs {
		if _, err := t.tx.Exec(ctx,
			`INSERT INTO accounts (account_id) VALUES ($1) ON CONFLICT (account_id) DO NOTHING`,
			id); err != nil {
			return nil, fmt.Errorf("failed to ensure account: %w", err)
		}
	}
	rows, err := t.tx.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts
		 WHERE account_id = ANY($1) ORDER BY account_id FOR UPDATE`,
		accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]*domain.Account, len(accountIDs))
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts[account.ID] = account
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	return accounts, nil
}

// AdjustCurrency applies delta to one balance. The guard in the UPDATE and
// the CHECK constraint together keep balances non-negative.
func (t *storeTx) AdjustCurrency(ctx context.Context, accountID string, currency domain.Currency, delta int64) error {
	if !currency.Valid() {
		return fmt.Errorf("%w: unknown currency %q", domain.ErrInvalidInput, currency)
	}
	// Column name comes from the closed Currency set, never from user input.
	col := string(currency)
	tag, err := t.tx.Exec(ctx,
		`UPDATE accounts SET `+col+` = `+col+` + $2, updated_at = NOW()
		 WHERE account_id = $1 AND `+col+` + $2 >= 0`,
		accountID, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust %s: %w", col, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s balance would drop below zero", domain.ErrInsufficientFunds, col)
	}
	return nil
}

// SetSkillLevels writes both crafting skill levels.
func (t *storeTx) SetSkillLevels(ctx context.Context, accountID string, forgeLevel, enchantLevel int) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE accounts SET forge_level = $2, enchant_level = $3, updated_at = NOW()
		 WHERE account_id = $1`,
		accountID, forgeLevel, enchantLevel)
	if err != nil {
		return fmt.Errorf("failed to set skill levels: %w", err)
	}
	return nil
}

// SetDailyGive overwrites the daily give counter and its day.
func (t *storeTx) SetDailyGive(ctx context.Context, accountID string, amount int64, day time.Time) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE accounts SET daily_give_amount = $2, daily_give_date = $3, updated_at = NOW()
		 WHERE account_id = $1`,
		accountID, amount, day)
	if err != nil {
		return fmt.Errorf("failed to set daily give: %w", err)
	}
	return nil
}

// SetLastTextReward stamps the chat-reward cooldown.
func (t *storeTx) SetLastTextReward(ctx context.Context, accountID string, at time.Time) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE accounts SET last_text_reward_at = $2, updated_at = NOW()
		 WHERE account_id = $1`,
		accountID, at)
	if err != nil {
		return fmt.Errorf("failed to set last text reward: %w", err)
	}
	return nil
}

// SetLastVoiceReward stamps the voice-reward cooldown.
func (t *storeTx) SetLastVoiceReward(ctx context.Context, accountID string, at time.Time) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE accounts SET last_voice_reward_at = $2, updated_at = NOW()
		 WHERE account_id = $1`,
		accountID, at)
	if err != nil {
		return fmt.Errorf("failed to set last voice reward: %w", err)
	}
	return nil
}

// GetInventoryQuantity returns the locked quantity of one inventory stack,
// 0 when the account holds none.
func (t *storeTx) GetInventoryQuantity(ctx context.Context, accountID string, itemID int) (int, error) {
	var qty int
	err := t.tx.QueryRow(ctx,
		`SELECT quantity FROM inventory
		 WHERE account_id = $1 AND item_id = $2 FOR UPDATE`,
		accountID, itemID).Scan(&qty)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get inventory quantity: %w", err)
	}
	return qty, nil
}

// AddInventory increments an existing stack or creates one.
func (t *storeTx) AddInventory(ctx context.Context, accountID string, itemID, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: add quantity must be positive, got %d", domain.ErrInvalidInput, qty)
	}
	_, err := t.tx.Exec(ctx,
		`INSERT INTO inventory (account_id, item_id, quantity) VALUES ($1, $2, $3)
		 ON CONFLICT (account_id, item_id)
		 DO UPDATE SET quantity = inventory.quantity + EXCLUDED.quantity`,
		accountID, itemID, qty)
	if err != nil {
		return fmt.Errorf("failed to add inventory: %w", err)
	}
	return nil
}

// RemoveInventory decrements a stack and deletes the row when it reaches
// zero, so no zero-quantity rows survive.
func (t *storeTx) RemoveInventory(ctx context.Context, accountID string, itemID, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: remove quantity must be positive, got %d", domain.ErrInvalidInput, qty)
	}
	tag, err := t.tx.Exec(ctx,
		`UPDATE inventory SET quantity = quantity - $3
		 WHERE account_id = $1 AND item_id = $2 AND quantity > $3`,
		accountID, itemID, qty)
	if err != nil {
		return fmt.Errorf("failed to remove inventory: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	// Either the stack is exactly qty (delete it) or too small (reject).
	tag, err = t.tx.Exec(ctx,
		`DELETE FROM inventory
		 WHERE account_id = $1 AND item_id = $2 AND quantity = $3`,
		accountID, itemID, qty)
	if err != nil {
		return fmt.Errorf("failed to remove inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: need %d of item %d", domain.ErrItemNotOwned, qty, itemID)
	}
	return nil
}

// CreatePet inserts a pet and returns it with its assigned id.
func (t *storeTx) CreatePet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	created := *pet
	err := t.tx.QueryRow(ctx,
		`INSERT INTO pets (owner_id, species, tier, pet_name, level, acquired_at, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING pet_id`,
		pet.OwnerID, pet.Species, pet.Tier, pet.Name, pet.Level, pet.AcquiredAt, pet.IsActive,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}
	return &created, nil
}

// GetActivePetForUpdate locks the owner's active pet row.
func (t *storeTx) GetActivePetForUpdate(ctx context.Context, ownerID string) (*domain.Pet, error) {
	pet, err := scanPet(t.tx.QueryRow(ctx,
		`SELECT `+petColumns+` FROM pets
		 WHERE owner_id = $1 AND is_active FOR UPDATE`,
		ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoActivePet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock active pet: %w", err)
	}
	return pet, nil
}

// AdjustPetLevel adds delta to one pet's level and returns the new level.
func (t *storeTx) AdjustPetLevel(ctx context.Context, petID int, delta float64) (float64, error) {
	var level float64
	err := t.tx.QueryRow(ctx,
		`UPDATE pets SET level = level + $2 WHERE pet_id = $1 RETURNING level`,
		petID, delta).Scan(&level)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrPetNotOwned
	}
	if err != nil {
		return 0, fmt.Errorf("failed to adjust pet level: %w", err)
	}
	return level, nil
}

// RenamePet sets a pet's display name.
func (t *storeTx) RenamePet(ctx context.Context, petID int, name string) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE pets SET pet_name = $2 WHERE pet_id = $1`, petID, name)
	if err != nil {
		return fmt.Errorf("failed to rename pet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: pet %d", domain.ErrPetNotOwned, petID)
	}
	return nil
}

// GetIncompleteJobForUpdate locks the owner's pending craft job, if any.
func (t *storeTx) GetIncompleteJobForUpdate(ctx context.Context, ownerID string) (*domain.CraftJob, error) {
	var job domain.CraftJob
	err := t.tx.QueryRow(ctx,
		`SELECT job_id, owner_id, item_kind, started_at, committed_duration_minutes, is_complete
		 FROM craft_jobs
		 WHERE owner_id = $1 AND NOT is_complete FOR UPDATE`,
		ownerID).Scan(&job.ID, &job.OwnerID, &job.ItemKind, &job.StartedAt,
		&job.CommittedDuration, &job.IsComplete)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoActiveJob
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock craft job: %w", err)
	}
	return &job, nil
}

// CreateCraftJob inserts a pending job. The partial unique index on
// incomplete jobs rejects a second pending job for the same owner.
func (t *storeTx) CreateCraftJob(ctx context.Context, job *domain.CraftJob) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO craft_jobs (job_id, owner_id, item_kind, started_at, committed_duration_minutes, is_complete)
		 VALUES ($1, $2, $3, $4, $5, FALSE)`,
		job.ID, job.OwnerID, job.ItemKind, job.StartedAt, job.CommittedDuration)
	if err != nil {
		return fmt.Errorf("failed to create craft job: %w", err)
	}
	return nil
}

// CompleteCraftJob marks a job done; completed jobs are never reused.
func (t *storeTx) CompleteCraftJob(ctx context.Context, jobID uuid.UUID) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE craft_jobs SET is_complete = TRUE WHERE job_id = $1 AND NOT is_complete`,
		jobID)
	if err != nil {
		return fmt.Errorf("failed to complete craft job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: job %s", domain.ErrNoActiveJob, jobID)
	}
	return nil
}

// GetItemByName for Tx
func (t *storeTx) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	return getItemByName(ctx, t.tx, name)
}

// GetItemByID for Tx
func (t *storeTx) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	return getItemByID(ctx, t.tx, itemID)
}

// FindOrCreateItem returns the definition with the item's name, inserting it
// when absent. Forge and enchant outputs are materialized through this.
func (t *storeTx) FindOrCreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	existing, err := getItemByName(ctx, t.tx, item.Name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrCatalogMissing) {
		return nil, err
	}
	created := *item
	err = t.tx.QueryRow(ctx,
		`INSERT INTO items (item_name, item_description, cost, kind, role_link_id, seasonal)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		 ON CONFLICT (item_name) DO UPDATE SET item_name = EXCLUDED.item_name
		 RETURNING item_id`,
		item.Name, item.Description, item.Cost, item.Kind, item.RoleLinkID, item.Seasonal,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return &created, nil
}
