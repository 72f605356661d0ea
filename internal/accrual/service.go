// Package accrual awards the two passive income streams: chat activity and
// voice presence. Both are cooldown-gated per account, with the cooldown
// timestamps stored on the account row so the gate survives restarts.
package accrual

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/logger"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

const (
	chatCooldown  = 10 * time.Minute
	voiceCooldown = time.Minute

	// Message length tiers. Below the base length nothing qualifies.
	chatBaseLength   = 10
	chatMediumLength = 50
	chatLongLength   = 150

	voiceBaseReward      = 1
	voiceStreamingBonus  = 4
	voiceGroupMultiplier = 1.2

	// voiceParticipantFloor is the minimum room size for any voice reward;
	// voiceGroupSize is where the group multiplier kicks in.
	voiceParticipantFloor = 2
	voiceGroupSize        = 3
)

// ChatReward is the outcome of one chat activity event. Awarded is false when
// the event was silently ignored (too short, or still on cooldown).
type ChatReward struct {
	Awarded bool  `json:"awarded"`
	Coins   int64 `json:"coins"`
}

// VoiceReward is the outcome of one voice presence tick.
type VoiceReward struct {
	Awarded bool  `json:"awarded"`
	Coins   int64 `json:"coins"`
}

// Service awards passive accrual. Ineligible events are not errors; they
// return a zero reward so callers never have to branch on failure for the
// common "nothing happened" case.
type Service interface {
	TryAwardChatReward(ctx context.Context, accountID string, messageLength int) (*ChatReward, error)
	TryAwardVoiceTick(ctx context.Context, accountID string, participants int, streaming bool) (*VoiceReward, error)
}

type service struct {
	repo repository.Ledger
	now  func() time.Time
}

// NewService creates a new accrual service
func NewService(repo repository.Ledger) Service {
	return &service{repo: repo, now: time.Now}
}

// chatCoins returns the tiered award for one qualifying message.
func chatCoins(messageLength int) int64 {
	switch {
	case messageLength >= chatLongLength:
		return 3
	case messageLength >= chatMediumLength:
		return 2
	case messageLength >= chatBaseLength:
		return 1
	}
	return 0
}

// voiceCoins returns the award for one qualifying voice tick.
func voiceCoins(participants int, streaming bool) int64 {
	coins := float64(voiceBaseReward)
	if streaming {
		coins += voiceStreamingBonus
	}
	if participants >= voiceGroupSize {
		coins = math.Ceil(coins * voiceGroupMultiplier)
	}
	return int64(coins)
}

func (s *service) TryAwardChatReward(ctx context.Context, accountID string, messageLength int) (*ChatReward, error) {
	coins := chatCoins(messageLength)
	if coins == 0 {
		return &ChatReward{}, nil
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
	now := s.now().UTC()
	if account.LastTextRewardAt != nil && now.Sub(*account.LastTextRewardAt) < chatCooldown {
		return &ChatReward{}, nil
	}

	if err := tx.AdjustCurrency(ctx, accountID, domain.CurrencyCoins, coins); err != nil {
		return nil, err
	}
	if err := tx.SetLastTextReward(ctx, accountID, now); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Debug("Chat reward awarded", "account", accountID, "coins", coins)
	return &ChatReward{Awarded: true, Coins: coins}, nil
}

func (s *service) TryAwardVoiceTick(ctx context.Context, accountID string, participants int, streaming bool) (*VoiceReward, error) {
	if participants < voiceParticipantFloor {
		return &VoiceReward{}, nil
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
	now := s.now().UTC()
	if account.LastVoiceRewardAt != nil && now.Sub(*account.LastVoiceRewardAt) < voiceCooldown {
		return &VoiceReward{}, nil
	}

	coins := voiceCoins(participants, streaming)
	if err := tx.AdjustCurrency(ctx, accountID, domain.CurrencyCoins, coins); err != nil {
		return nil, err
	}
	if err := tx.SetLastVoiceReward(ctx, accountID, now); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Debug("Voice reward awarded", "account", accountID, "coins", coins)
	return &VoiceReward{Awarded: true, Coins: coins}, nil
}
