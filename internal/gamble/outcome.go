package gamble

// Tier is the outcome bucket of one gamble draw.
type Tier string

const (
	TierJackpot  Tier = "jackpot"
	TierBigWin   Tier = "big_win"
	TierWin      Tier = "win"
	TierSmallWin Tier = "small_win"
	TierLoss     Tier = "loss"
)

// Ordered thresholds for a single uniform draw in [0,1). Each tier claims
// the draw below its threshold; evaluation stops at the first match, so the
// tier probabilities can never sum past 1.
const (
	jackpotThreshold  = 0.0001
	bigWinThreshold   = 0.005
	winThreshold      = 0.03
	smallWinThreshold = 0.20
)

// Multiplier returns the stake multiplier paid for the tier.
func (t Tier) Multiplier() int64 {
	switch t {
	case TierJackpot:
		return 1000
	case TierBigWin:
		return 50
	case TierWin:
		return 10
	case TierSmallWin:
		return 2
	}
	return 0
}

// ResolveTier maps one draw onto its outcome tier.
func ResolveTier(draw float64) Tier {
	switch {
	case draw < jackpotThreshold:
		return TierJackpot
	case draw < bigWinThreshold:
		return TierBigWin
	case draw < winThreshold:
		return TierWin
	case draw < smallWinThreshold:
		return TierSmallWin
	}
	return TierLoss
}
