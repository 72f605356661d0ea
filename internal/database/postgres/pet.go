package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

// PetRepository implements the pet repository for PostgreSQL
type PetRepository struct {
	db *pgxpool.Pool
}

// NewPetRepository creates a new PetRepository
func NewPetRepository(db *pgxpool.Pool) *PetRepository {
	return &PetRepository{db: db}
}

// BeginTx starts a new transaction
func (r *PetRepository) BeginTx(ctx context.Context) (repository.PetTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &storeTx{tx: tx}, nil
}

// ListPets returns the owner's pets, oldest first.
func (r *PetRepository) ListPets(ctx context.Context, ownerID string) ([]domain.Pet, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+petColumns+` FROM pets WHERE owner_id = $1 ORDER BY acquired_at, pet_id`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pets: %w", err)
	}
	defer rows.Close()

	var pets []domain.Pet
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pet: %w", err)
		}
		pets = append(pets, *pet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pets: %w", err)
	}
	return pets, nil
}

// GetPet returns one pet or domain.ErrPetNotOwned.
func (r *PetRepository) GetPet(ctx context.Context, petID int) (*domain.Pet, error) {
	pet, err := scanPet(r.db.QueryRow(ctx,
		`SELECT `+petColumns+` FROM pets WHERE pet_id = $1`, petID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPetNotOwned
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}
	return pet, nil
}

// GetActivePet returns the owner's active pet or domain.ErrNoActivePet.
func (r *PetRepository) GetActivePet(ctx context.Context, ownerID string) (*domain.Pet, error) {
	pet, err := scanPet(r.db.QueryRow(ctx,
		`SELECT `+petColumns+` FROM pets WHERE owner_id = $1 AND is_active`,
		ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoActivePet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active pet: %w", err)
	}
	return pet, nil
}

// SetActivePet deactivates the owner's other pets and activates the target
// in one transaction, keeping the single-active invariant.
func (r *PetRepository) SetActivePet(ctx context.Context, ownerID string, petID int) (*domain.Pet, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, &storeTx{tx: tx})

	if _, err := tx.Exec(ctx,
		`UPDATE pets SET is_active = FALSE WHERE owner_id = $1 AND is_active AND pet_id <> $2`,
		ownerID, petID); err != nil {
		return nil, fmt.Errorf("failed to deactivate pets: %w", err)
	}
	pet, err := scanPet(tx.QueryRow(ctx,
		`UPDATE pets SET is_active = TRUE
		 WHERE pet_id = $1 AND owner_id = $2
		 RETURNING `+petColumns,
		petID, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPetNotOwned
	}
	if err != nil {
		return nil, fmt.Errorf("failed to activate pet: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return pet, nil
}

// IncrementActivePetLevels grows every active pet by delta and returns how
// many pets were grown. Used by the hourly growth pass.
func (r *PetRepository) IncrementActivePetLevels(ctx context.Context, delta float64) (int, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE pets SET level = level + $1 WHERE is_active`, delta)
	if err != nil {
		return 0, fmt.Errorf("failed to grow active pets: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// CreatePet inserts a pet outside any larger unit of work.
func (r *PetRepository) CreatePet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	created := *pet
	err := r.db.QueryRow(ctx,
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

// DeletePet removes a pet.
func (r *PetRepository) DeletePet(ctx context.Context, petID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pets WHERE pet_id = $1`, petID)
	if err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: pet %d", domain.ErrPetNotOwned, petID)
	}
	return nil
}

// RenamePet sets a pet's display name.
func (r *PetRepository) RenamePet(ctx context.Context, petID int, name string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE pets SET pet_name = $2 WHERE pet_id = $1`, petID, name)
	if err != nil {
		return fmt.Errorf("failed to rename pet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: pet %d", domain.ErrPetNotOwned, petID)
	}
	return nil
}
