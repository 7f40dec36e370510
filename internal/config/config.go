// Package config provides YAML-based gameplay configuration loading and
// difficulty presets for the bastion platform.
package config

import "github.com/vovakirdan/tui-bastion/internal/content"

// BastionConfig contains all tunable gameplay parameters. It mirrors
// content.Balance but with YAML structure suited to hand-editing.
type BastionConfig struct {
	Economy  EconomyConfig  `yaml:"economy"`
	Pacing   PacingConfig   `yaml:"pacing"`
	Upgrades UpgradeConfig  `yaml:"upgrades"`
	Emission EmissionConfig `yaml:"emission"`
	Endless  EndlessConfig  `yaml:"endless"`
}

// EconomyConfig defines the starting economy and sell refunds.
type EconomyConfig struct {
	StartMoney   int     `yaml:"start_money"`
	StartLives   int     `yaml:"start_lives"`
	RefundRatio  float64 `yaml:"refund_ratio"`
	MinSellValue int     `yaml:"min_sell_value"`
}

// PacingConfig defines inter-wave timing.
type PacingConfig struct {
	InterWavePause float64 `yaml:"inter_wave_pause"`
}

// UpgradeConfig defines upgrade pricing and per-level stat bonuses.
type UpgradeConfig struct {
	// Multipliers price each upgrade step as a fraction of base cost;
	// the list length fixes the maximum tower level.
	Multipliers          []float64 `yaml:"multipliers"`
	RangeBonus           float64   `yaml:"range_bonus"`
	FireRateBonus        float64   `yaml:"fire_rate_bonus"`
	DamageBonus          float64   `yaml:"damage_bonus"`
	ProjectileSpeedBonus float64   `yaml:"projectile_speed_bonus"`
}

// EmissionConfig bounds per-tick cosmetic event/effect output.
type EmissionConfig struct {
	MaxHitEventsPerTick     int     `yaml:"max_hit_events_per_tick"`
	MaxImpactEffectsPerTick int     `yaml:"max_impact_effects_per_tick"`
	BeamEventInterval       float64 `yaml:"beam_event_interval"`
}

// EndlessConfig defines endless-mode wave synthesis.
type EndlessConfig struct {
	BaseCount    int     `yaml:"base_count"`
	CountStep    int     `yaml:"count_step"`
	BaseInterval float64 `yaml:"base_interval"`
	IntervalStep float64 `yaml:"interval_step"`
	MinInterval  float64 `yaml:"min_interval"`
	StartDelay   float64 `yaml:"start_delay"`
}

// ToBalance converts the config into the simulation's balance value.
func (c BastionConfig) ToBalance() content.Balance {
	return content.Balance{
		StartMoney:     c.Economy.StartMoney,
		StartLives:     c.Economy.StartLives,
		InterWavePause: c.Pacing.InterWavePause,

		RangeBonus:           c.Upgrades.RangeBonus,
		FireRateBonus:        c.Upgrades.FireRateBonus,
		DamageBonus:          c.Upgrades.DamageBonus,
		ProjectileSpeedBonus: c.Upgrades.ProjectileSpeedBonus,
		UpgradeMultipliers:   append([]float64(nil), c.Upgrades.Multipliers...),

		RefundRatio:  c.Economy.RefundRatio,
		MinSellValue: c.Economy.MinSellValue,

		MaxHitEventsPerTick:     c.Emission.MaxHitEventsPerTick,
		MaxImpactEffectsPerTick: c.Emission.MaxImpactEffectsPerTick,
		BeamEventInterval:       c.Emission.BeamEventInterval,

		EndlessBaseCount:    c.Endless.BaseCount,
		EndlessCountStep:    c.Endless.CountStep,
		EndlessBaseInterval: c.Endless.BaseInterval,
		EndlessIntervalStep: c.Endless.IntervalStep,
		EndlessMinInterval:  c.Endless.MinInterval,
		EndlessStartDelay:   c.Endless.StartDelay,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyBastionPreset adjusts the economy and pacing for a difficulty
// preset. Normal leaves the loaded config untouched.
func ApplyBastionPreset(cfg *BastionConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Economy.StartMoney = 400
		cfg.Economy.StartLives = 30
		cfg.Economy.RefundRatio = 0.8
	case DifficultyHard:
		cfg.Economy.StartMoney = 220
		cfg.Economy.StartLives = 12
		cfg.Economy.RefundRatio = 0.6
		cfg.Pacing.InterWavePause = 2.0
	}
}
