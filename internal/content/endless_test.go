package content

import "testing"

func TestEndlessWaveIsPureFunctionOfIndex(t *testing.T) {
	b := DefaultBalance()
	for i := 0; i < 50; i++ {
		a, c := EndlessWave(i, b), EndlessWave(i, b)
		if a != c {
			t.Fatalf("wave %d differs between calls: %+v vs %+v", i, a, c)
		}
	}
}

func TestEndlessWaveRampsUp(t *testing.T) {
	b := DefaultBalance()

	w0 := EndlessWave(0, b)
	if w0.EnemyType != EndlessRotation()[0] {
		t.Errorf("wave 0 enemy = %q, want the weakest type", w0.EnemyType)
	}
	if w0.Count != b.EndlessBaseCount {
		t.Errorf("wave 0 count = %d, want %d", w0.Count, b.EndlessBaseCount)
	}
	if w0.SpawnInterval != b.EndlessBaseInterval {
		t.Errorf("wave 0 interval = %v, want %v", w0.SpawnInterval, b.EndlessBaseInterval)
	}

	w10 := EndlessWave(10, b)
	if w10.Count <= w0.Count {
		t.Errorf("count does not grow: wave 10 = %d, wave 0 = %d", w10.Count, w0.Count)
	}
	if w10.SpawnInterval >= w0.SpawnInterval {
		t.Errorf("interval does not shrink: wave 10 = %v, wave 0 = %v", w10.SpawnInterval, w0.SpawnInterval)
	}
}

func TestEndlessIntervalFloored(t *testing.T) {
	b := DefaultBalance()
	w := EndlessWave(1000, b)
	if w.SpawnInterval != b.EndlessMinInterval {
		t.Errorf("far wave interval = %v, want floor %v", w.SpawnInterval, b.EndlessMinInterval)
	}
}

// Early waves draw only from the front of the rotation; the full roster
// unlocks as the index grows.
func TestEndlessPoolWidens(t *testing.T) {
	b := DefaultBalance()
	rot := EndlessRotation()

	if w := EndlessWave(1, b); w.EnemyType != rot[0] {
		t.Errorf("wave 1 enemy = %q, want still %q", w.EnemyType, rot[0])
	}

	seen := make(map[string]bool)
	for i := 0; i < 40; i++ {
		seen[EndlessWave(i, b).EnemyType] = true
	}
	for _, id := range rot {
		if !seen[id] {
			t.Errorf("enemy %q never scheduled in 40 waves", id)
		}
	}
}
