// Package progression holds the skill leveling arithmetic shared by the
// forge and enchant services.
package progression

// XP thresholds and award rates.
const (
	XPPerLevel       = 500
	ForgeXPPerHour   = 10
	EnchantXPBase    = 50
	EnchantXPPerLvl  = 10
	WaitReductionPct = 0.5
)

// ForgeXP returns the XP awarded for a craft of the given committed
// duration. Quality does not factor in; only time invested counts.
func ForgeXP(committedMinutes int) int {
	return (committedMinutes / 60) * ForgeXPPerHour
}

// EnchantXP returns the XP awarded for a successful enchant at the given
// skill level.
func EnchantXP(enchantLevel int) int {
	return EnchantXPBase + EnchantXPPerLvl*enchantLevel
}

// LevelsGained converts an XP award into whole levels. A single large
// award can grant more than one level.
func LevelsGained(xp int) int {
	return xp / XPPerLevel
}

// ActualWaitMinutes returns the advisory wait estimate for a craft.
// Each level past the first shaves half a percent off the displayed
// wait. The committed duration itself is never reduced; collection
// eligibility always uses the full committed time.
func ActualWaitMinutes(committedMinutes, forgeLevel int) float64 {
	reduction := float64(forgeLevel-1) * WaitReductionPct
	if reduction < 0 {
		reduction = 0
	}

	wait := float64(committedMinutes) * (1 - reduction/100)
	if wait < 1 {
		wait = 1
	}
	return wait
}
