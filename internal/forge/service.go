package forge

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/dotworks/PixieBot_Go/internal/catalog"
	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/logger"
	"github.com/dotworks/PixieBot_Go/internal/progression"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

// RecipeSource resolves forge recipes by name. Satisfied by catalog.Service.
type RecipeSource interface {
	GetRecipe(name string) (*catalog.Recipe, error)
	Recipes() []catalog.Recipe
}

// StartResult reports a started craft job.
type StartResult struct {
	JobID             uuid.UUID `json:"job_id"`
	Recipe            string    `json:"recipe"`
	CommittedDuration int       `json:"committed_duration_minutes"`
	EstimatedWait     float64   `json:"estimated_wait_minutes"`
	ReadyAt           time.Time `json:"ready_at"`
}

// CollectResult reports a collected craft.
type CollectResult struct {
	ItemName      string  `json:"item_name"`
	Quality       Quality `json:"quality"`
	ItemValue     int     `json:"item_value"`
	XPAwarded     int     `json:"xp_awarded"`
	LevelsGained  int     `json:"levels_gained"`
	NewForgeLevel int     `json:"new_forge_level"`
}

// Status reports the owner's current job, if any.
type Status struct {
	JobID            uuid.UUID `json:"job_id"`
	Recipe           string    `json:"recipe"`
	ElapsedMinutes   float64   `json:"elapsed_minutes"`
	RemainingMinutes float64   `json:"remaining_minutes"`
	EstimatedWait    float64   `json:"estimated_wait_minutes"`
	Ready            bool      `json:"ready"`
}

// Service runs the forge: one pending craft job per account, graded on
// collection and feeding the forge skill.
type Service interface {
	StartCraft(ctx context.Context, accountID, recipeName string, durationMinutes int) (*StartResult, error)
	CollectCraft(ctx context.Context, accountID string) (*CollectResult, error)
	GetStatus(ctx context.Context, accountID string) (*Status, error)
	ListRecipes() []catalog.Recipe
}

type service struct {
	repo    repository.Craft
	recipes RecipeSource
	rnd     func() float64
	now     func() time.Time
}

// NewService creates a new forge service
func NewService(repo repository.Craft, recipes RecipeSource) Service {
	return &service{repo: repo, recipes: recipes, rnd: rand.Float64, now: time.Now}
}

func (s *service) ListRecipes() []catalog.Recipe {
	return s.recipes.Recipes()
}

func (s *service) StartCraft(ctx context.Context, accountID, recipeName string, durationMinutes int) (*StartResult, error) {
	if durationMinutes < 1 || durationMinutes > domain.MaxCraftDurationMinutes {
		return nil, fmt.Errorf("%w: duration must be between 1 and %d minutes",
			domain.ErrInvalidInput, domain.MaxCraftDurationMinutes)
	}
	recipe, err := s.recipes.GetRecipe(recipeName)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	account, err := tx.GetAccountForUpdate(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if _, err := tx.GetIncompleteJobForUpdate(ctx, accountID); err == nil {
		return nil, fmt.Errorf("%w: collect it before starting another", domain.ErrAlreadyCrafting)
	} else if !errors.Is(err, domain.ErrNoActiveJob) {
		return nil, err
	}

	startedAt := s.now().UTC()
	job := &domain.CraftJob{
		ID:                uuid.New(),
		OwnerID:           accountID,
		ItemKind:          recipe.Name,
		StartedAt:         startedAt,
		CommittedDuration: durationMinutes,
	}
	if err := tx.CreateCraftJob(ctx, job); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info("Craft started",
		"account", accountID, "recipe", recipe.Name, "duration", durationMinutes)
	return &StartResult{
		JobID:             job.ID,
		Recipe:            recipe.Name,
		CommittedDuration: durationMinutes,
		EstimatedWait:     progression.ActualWaitMinutes(durationMinutes, account.ForgeLevel),
		ReadyAt:           startedAt.Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}

func (s *service) CollectCraft(ctx context.Context, accountID string) (*CollectResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	account, err := tx.GetAccountForUpdate(ctx, accountID)
	if err != nil {
		return nil, err
	}
	job, err := tx.GetIncompleteJobForUpdate(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if !job.Ready(now) {
		remaining := float64(job.CommittedDuration) - job.ElapsedMinutes(now)
		return nil, fmt.Errorf("%w: ready in %.0f minutes", domain.ErrCraftNotReady, math.Ceil(remaining))
	}
	if err := tx.CompleteCraftJob(ctx, job.ID); err != nil {
		return nil, err
	}

	recipe, err := s.recipes.GetRecipe(job.ItemKind)
	if err != nil {
		return nil, err
	}
	quality := ResolveQuality(job.CommittedDuration, recipe.MinimumMinutes, s.rnd())
	value := int(float64(recipe.BaseValue) * quality.Multiplier())

	output, err := tx.FindOrCreateItem(ctx, &domain.Item{
		Name:        outputName(recipe.Name, quality),
		Description: recipe.Description,
		Cost:        value,
		Kind:        recipe.ItemKind(),
	})
	if err != nil {
		return nil, err
	}
	if err := tx.AddInventory(ctx, accountID, output.ID, 1); err != nil {
		return nil, err
	}

	// XP rewards the committed time, not the realized quality.
	xp := progression.ForgeXP(job.CommittedDuration)
	levels := progression.LevelsGained(xp)
	newLevel := account.ForgeLevel + levels
	if levels > 0 {
		if err := tx.SetSkillLevels(ctx, accountID, newLevel, account.EnchantLevel); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Craft collected", "account", accountID, "item", output.Name,
		"quality", quality, "xp", xp, "forge_level", newLevel)
	return &CollectResult{
		ItemName:      output.Name,
		Quality:       quality,
		ItemValue:     value,
		XPAwarded:     xp,
		LevelsGained:  levels,
		NewForgeLevel: newLevel,
	}, nil
}

func (s *service) GetStatus(ctx context.Context, accountID string) (*Status, error) {
	account, err := s.repo.GetOrCreateAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	job, err := s.repo.GetIncompleteJob(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	elapsed := job.ElapsedMinutes(now)
	remaining := float64(job.CommittedDuration) - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return &Status{
		JobID:            job.ID,
		Recipe:           job.ItemKind,
		ElapsedMinutes:   elapsed,
		RemainingMinutes: remaining,
		EstimatedWait:    progression.ActualWaitMinutes(job.CommittedDuration, account.ForgeLevel),
		Ready:            job.Ready(now),
	}, nil
}

// outputName is the catalog name of a graded craft. Average output keeps the
// plain recipe name.
func outputName(recipeName string, quality Quality) string {
	if quality == QualityAverage {
		return recipeName
	}
	return fmt.Sprintf("%s (%s)", recipeName, quality)
}
