package content

import (
	"math"
	"testing"
)

func TestStatsScaling(t *testing.T) {
	b := DefaultBalance()
	gun := Tower("gun")

	l1 := Stats(gun, 1, b)
	if l1.Range != gun.Range || l1.Damage != gun.Damage || l1.FireRate != gun.FireRate {
		t.Fatalf("level 1 stats must equal the base archetype, got %+v", l1)
	}

	l2 := Stats(gun, 2, b)
	if math.Abs(l2.Range-gun.Range*1.10) > 1e-9 {
		t.Errorf("level 2 range = %v, want %v", l2.Range, gun.Range*1.10)
	}
	if math.Abs(l2.FireRate-gun.FireRate*1.15) > 1e-9 {
		t.Errorf("level 2 fire rate = %v, want %v", l2.FireRate, gun.FireRate*1.15)
	}
	if l2.Damage != 15 { // round(12 * 1.25)
		t.Errorf("level 2 damage = %d, want 15", l2.Damage)
	}

	// Bonuses are additive on the base, not compounding.
	l3 := Stats(gun, 3, b)
	if l3.Damage != 18 { // round(12 * 1.50)
		t.Errorf("level 3 damage = %d, want 18", l3.Damage)
	}
}

func TestUpgradeCost(t *testing.T) {
	b := DefaultBalance()
	gun := Tower("gun")

	tests := []struct {
		level  int
		want   int
		wantOK bool
	}{
		{1, 65, true}, // 100 * 0.65
		{2, 90, true}, // 100 * 0.90
		{3, 0, false}, // max level
		{0, 0, false},
	}
	for _, tt := range tests {
		got, ok := UpgradeCost(gun, tt.level, b)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("UpgradeCost(gun, %d) = (%d, %v), want (%d, %v)", tt.level, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMaxTowerLevel(t *testing.T) {
	if got := DefaultBalance().MaxTowerLevel(); got != 3 {
		t.Fatalf("MaxTowerLevel = %d, want 3", got)
	}
}

func TestSellValue(t *testing.T) {
	b := DefaultBalance()
	tests := []struct {
		invested int
		want     int
	}{
		{100, 70},
		{165, 116}, // exact half rounds up
		{255, 179}, // round(178.5)
		{0, 1},     // floored at the minimum
	}
	for _, tt := range tests {
		if got := SellValue(tt.invested, b); got != tt.want {
			t.Errorf("SellValue(%d) = %d, want %d", tt.invested, got, tt.want)
		}
	}
}
