package content

import "math"

// TowerStats are the effective combat numbers of a tower at a given level.
type TowerStats struct {
	Range           float64
	FireRate        float64
	ProjectileSpeed float64
	Damage          int
}

// Stats derives the effective stats of an archetype at the given level.
// Bonuses are additive on top of the base (no compounding):
// stat = base * (1 + rate*(level-1)). Damage is rounded to an integer.
func Stats(a *TowerArchetype, level int, b Balance) TowerStats {
	steps := float64(level - 1)
	return TowerStats{
		Range:           a.Range * (1 + b.RangeBonus*steps),
		FireRate:        a.FireRate * (1 + b.FireRateBonus*steps),
		ProjectileSpeed: a.ProjectileSpeed * (1 + b.ProjectileSpeedBonus*steps),
		Damage:          int(math.Round(float64(a.Damage) * (1 + b.DamageBonus*steps))),
	}
}

// UpgradeCost returns the price of upgrading from the given level to the
// next one. The second return is false when the tower is already at max
// level and no further upgrade is available.
func UpgradeCost(a *TowerArchetype, level int, b Balance) (int, bool) {
	if level < 1 || level > len(b.UpgradeMultipliers) {
		return 0, false
	}
	return int(math.Round(float64(a.Cost) * b.UpgradeMultipliers[level-1])), true
}

// SellValue returns the refund for a tower given everything spent on it
// (purchase plus upgrades), floored at the configured minimum. The epsilon
// keeps exact halves (165 * 0.7 = 115.5) rounding up despite float
// representation error.
func SellValue(invested int, b Balance) int {
	v := int(math.Round(float64(invested)*b.RefundRatio + 1e-9))
	if v < b.MinSellValue {
		return b.MinSellValue
	}
	return v
}
