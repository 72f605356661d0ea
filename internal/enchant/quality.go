package enchant

// Quality is the realized grade of an enchant. Unlike the forge there is no
// failure grade; Standard still bumps the item's value.
type Quality string

const (
	QualityStandard  Quality = "Standard"
	QualityGood      Quality = "Good"
	QualityEpic      Quality = "Epic"
	QualityLegendary Quality = "Legendary"
)

// Multiplier returns the value multiplier applied to the base item's value.
func (q Quality) Multiplier() float64 {
	switch q {
	case QualityGood:
		return 1.5
	case QualityEpic:
		return 2.0
	case QualityLegendary:
		return 3.0
	}
	return 1.2
}

// ResolveQuality grades an enchant from the account's enchant skill level.
// One draw is checked against ordered absolute thresholds, best tier first;
// every threshold widens with level, so higher levels strictly dominate.
func ResolveQuality(enchantLevel int, draw float64) Quality {
	level := float64(enchantLevel)
	switch {
	case draw < 0.005+level*0.002:
		return QualityLegendary
	case draw < 0.03+level*0.005:
		return QualityEpic
	case draw < 0.15+level*0.01:
		return QualityGood
	}
	return QualityStandard
}
