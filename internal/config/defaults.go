package config

import (
	_ "embed"
)

//go:embed defaults/bastion.yaml
var defaultBastionYAML []byte

// DefaultBastionConfig returns the built-in gameplay configuration,
// matching the embedded YAML.
func DefaultBastionConfig() BastionConfig {
	return BastionConfig{
		Economy: EconomyConfig{
			StartMoney:   300,
			StartLives:   20,
			RefundRatio:  0.7,
			MinSellValue: 1,
		},
		Pacing: PacingConfig{
			InterWavePause: 3.0,
		},
		Upgrades: UpgradeConfig{
			Multipliers:          []float64{0.65, 0.90},
			RangeBonus:           0.10,
			FireRateBonus:        0.15,
			DamageBonus:          0.25,
			ProjectileSpeedBonus: 0.05,
		},
		Emission: EmissionConfig{
			MaxHitEventsPerTick:     6,
			MaxImpactEffectsPerTick: 6,
			BeamEventInterval:       0.5,
		},
		Endless: EndlessConfig{
			BaseCount:    5,
			CountStep:    2,
			BaseInterval: 1.0,
			IntervalStep: 0.04,
			MinInterval:  0.25,
			StartDelay:   1.5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBastionYAML
}
