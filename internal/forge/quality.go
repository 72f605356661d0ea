package forge

// Quality is the realized grade of a collected craft.
type Quality string

const (
	QualityShoddy    Quality = "Shoddy"
	QualityAverage   Quality = "Average"
	QualityEpic      Quality = "Epic"
	QualityLegendary Quality = "Legendary"
)

// Multiplier returns the value multiplier applied to the recipe's base value.
func (q Quality) Multiplier() float64 {
	switch q {
	case QualityShoddy:
		return 0.5
	case QualityEpic:
		return 2.0
	case QualityLegendary:
		return 3.0
	}
	return 1.0
}

// ResolveQuality grades a craft from its committed duration. Undercommitting
// the recipe's minimum forces Shoddy regardless of the draw; overcommitting
// raises the legendary and epic chances, capped at three times the minimum.
// One draw is checked against cumulative ordered thresholds, best tier first.
func ResolveQuality(committedMinutes, minimumMinutes int, draw float64) Quality {
	if committedMinutes < minimumMinutes {
		return QualityShoddy
	}

	extraRatio := float64(committedMinutes-minimumMinutes) / float64(minimumMinutes)
	if extraRatio > 2.0 {
		extraRatio = 2.0
	}

	legendaryChance := 0.005 + extraRatio*0.005
	epicChance := 0.02 + extraRatio*0.015

	switch {
	case draw < legendaryChance:
		return QualityLegendary
	case draw < legendaryChance+epicChance:
		return QualityEpic
	}
	return QualityAverage
}
