package gamble

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/logger"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

// Result reports one resolved gamble.
type Result struct {
	Tier       Tier  `json:"tier"`
	Multiplier int64 `json:"multiplier"`
	Stake      int64 `json:"stake"`
	Winnings   int64 `json:"winnings"`
	NewBalance int64 `json:"new_balance"`
}

// Service resolves coin gambles. The stake leaves the balance before the
// draw; winnings land in the same transaction, so the net effect is atomic.
type Service interface {
	Gamble(ctx context.Context, accountID string, stake int64) (*Result, error)
}

type service struct {
	repo repository.Ledger
	rnd  func() float64
}

// NewService creates a new gamble service
func NewService(repo repository.Ledger) Service {
	return &service{repo: repo, rnd: rand.Float64}
}

func (s *service) Gamble(ctx context.Context, accountID string, stake int64) (*Result, error) {
	log := logger.FromContext(ctx)
	if stake < 1 {
		return nil, fmt.Errorf("%w: stake must be positive", domain.ErrInvalidInput)
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
	if err := tx.AdjustCurrency(ctx, accountID, domain.CurrencyCoins, -stake); err != nil {
		return nil, err
	}

	tier := ResolveTier(s.rnd())
	winnings := stake * tier.Multiplier()
	if winnings > 0 {
		if err := tx.AdjustCurrency(ctx, accountID, domain.CurrencyCoins, winnings); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	result := &Result{
		Tier:       tier,
		Multiplier: tier.Multiplier(),
		Stake:      stake,
		Winnings:   winnings,
		NewBalance: account.Coins - stake + winnings,
	}
	log.Info("Gamble resolved", "account", accountID, "stake", stake, "tier", tier, "winnings", winnings)
	return result, nil
}
