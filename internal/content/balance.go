package content

// Balance carries every gameplay tunable that is configuration rather than
// semantics: economy rates, pacing, and the per-tick emission budgets that
// bound cosmetic event/effect volume. A Balance value is copied into each
// match state so a running simulation never observes a config change.
type Balance struct {
	StartMoney int
	StartLives int

	// InterWavePause is added to each wave's own start delay when the
	// previous wave is cleared.
	InterWavePause float64

	// Per-level-above-1 additive stat bonuses (0.10 = +10% per level).
	RangeBonus           float64
	FireRateBonus        float64
	DamageBonus          float64
	ProjectileSpeedBonus float64

	// UpgradeMultipliers[i] prices the upgrade from level i+1 to i+2, as a
	// fraction of the archetype cost. Its length fixes the max tower level.
	UpgradeMultipliers []float64

	// RefundRatio of the total invested cost returned on sell, floored at
	// MinSellValue.
	RefundRatio  float64
	MinSellValue int

	// Emission budgets. Damage and state changes are never dropped; only
	// cosmetic event/effect emission is throttled.
	MaxHitEventsPerTick     int
	MaxImpactEffectsPerTick int
	BeamEventInterval       float64 // seconds between beam fire events per tower

	// Endless-mode wave synthesis.
	EndlessBaseCount    int
	EndlessCountStep    int     // extra enemies per wave index
	EndlessBaseInterval float64 // spawn interval of wave 0
	EndlessIntervalStep float64 // interval shrink per wave index
	EndlessMinInterval  float64
	EndlessStartDelay   float64
}

// DefaultBalance returns the built-in tuning.
func DefaultBalance() Balance {
	return Balance{
		StartMoney:     300,
		StartLives:     20,
		InterWavePause: 3.0,

		RangeBonus:           0.10,
		FireRateBonus:        0.15,
		DamageBonus:          0.25,
		ProjectileSpeedBonus: 0.05,

		UpgradeMultipliers: []float64{0.65, 0.90},
		RefundRatio:        0.7,
		MinSellValue:       1,

		MaxHitEventsPerTick:     6,
		MaxImpactEffectsPerTick: 6,
		BeamEventInterval:       0.5,

		EndlessBaseCount:    5,
		EndlessCountStep:    2,
		EndlessBaseInterval: 1.0,
		EndlessIntervalStep: 0.04,
		EndlessMinInterval:  0.25,
		EndlessStartDelay:   1.5,
	}
}

// MaxTowerLevel returns the highest reachable tower level under this balance.
func (b Balance) MaxTowerLevel() int {
	return len(b.UpgradeMultipliers) + 1
}
