package sim

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-bastion/internal/content"
	"github.com/vovakirdan/tui-bastion/internal/route"
)

const dt = 1.0 / 30

// quietState returns a running classic match with spawning pushed far into
// the future, so tests can stage enemies and projectiles by hand without
// the wave schedule interfering.
func quietState(t *testing.T) State {
	t.Helper()
	s := New("meadow-1", content.DefaultBalance())
	s.WaveDelay = 1e9
	return s
}

func stagedEnemy(id string, progress, health float64) Enemy {
	return Enemy{
		ID:         id,
		Type:       "scout",
		Radius:     0.3,
		Speed:      0, // stays put through the movement step
		Reward:     8,
		CoreDamage: 1,
		MaxHealth:  int(health),
		Health:     health,
		Progress:   progress,
		SlowFactor: 1,
	}
}

func countEvents(s State, typ EventType) int {
	n := 0
	for _, e := range s.RecentEvents {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func TestAdvanceIsDeterministic(t *testing.T) {
	run := func() State {
		s := New("meadow-1", content.DefaultBalance())
		for i := 0; i < 90; i++ {
			s = Advance(s, dt)
		}
		s = PlaceTower(s, "gun", route.Cell{Col: 5, Row: 4})
		for i := 0; i < 150; i++ {
			s = Advance(s, dt)
		}
		s = UpgradeTower(s, s.TowerAt(route.Cell{Col: 5, Row: 4}).ID)
		for i := 0; i < 300; i++ {
			s = Advance(s, dt)
		}
		return s
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two identical runs diverged:\n%+v\nvs\n%+v", a, b)
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	s := New("meadow-1", content.DefaultBalance())
	for i := 0; i < 120; i++ {
		s = Advance(s, dt)
	}
	before := s.clone()
	_ = Advance(s, dt)
	if !reflect.DeepEqual(before, s) {
		t.Fatal("Advance mutated its input state")
	}
}

func TestTerminalStateIsFixed(t *testing.T) {
	for _, status := range []Status{StatusWon, StatusLost} {
		s := New("meadow-1", content.DefaultBalance())
		s.Status = status
		next := Advance(s, dt)
		if !reflect.DeepEqual(s, next) {
			t.Errorf("Advance on %s state changed it", status)
		}
		if got := PlaceTower(s, "gun", route.Cell{Col: 5, Row: 4}); !reflect.DeepEqual(s, got) {
			t.Errorf("PlaceTower on %s state changed it", status)
		}
	}
}

func TestZeroDtIsNoop(t *testing.T) {
	s := New("meadow-1", content.DefaultBalance())
	if got := Advance(s, 0); !reflect.DeepEqual(s, got) {
		t.Error("Advance with dt=0 changed state")
	}
	if got := Advance(s, -1); !reflect.DeepEqual(s, got) {
		t.Error("Advance with negative dt changed state")
	}
}

// A tick with nothing on the field only moves time: money, lives, and the
// id counters are untouched while wave timers count down and effects age.
func TestQuietTickConservesResources(t *testing.T) {
	s := quietState(t)
	s.addEffect(Effect{Kind: EffectHit, Duration: 10})

	next := Advance(s, dt)

	if next.Money != s.Money || next.Lives != s.Lives {
		t.Errorf("quiet tick changed resources: money %d -> %d, lives %d -> %d",
			s.Money, next.Money, s.Lives, next.Lives)
	}
	if next.NextEnemyID != s.NextEnemyID || next.NextTowerID != s.NextTowerID ||
		next.NextProjectileID != s.NextProjectileID || next.NextEffectID != s.NextEffectID ||
		next.NextEventID != s.NextEventID {
		t.Error("quiet tick advanced an id counter")
	}
	if len(next.Enemies) != 0 || len(next.Projectiles) != 0 || len(next.Beams) != 0 {
		t.Error("quiet tick conjured field objects")
	}
	if len(next.RecentEvents) != 0 {
		t.Errorf("quiet tick emitted events: %+v", next.RecentEvents)
	}
	if next.Time != s.Time+dt {
		t.Errorf("time = %v, want %v", next.Time, s.Time+dt)
	}
	if next.WaveDelay != s.WaveDelay-dt {
		t.Errorf("wave delay = %v, want %v", next.WaveDelay, s.WaveDelay-dt)
	}
	if len(next.Effects) != 1 || next.Effects[0].Age != dt {
		t.Errorf("staged effect did not age by dt: %+v", next.Effects)
	}
}

// A single large tick must catch up on every spawn the interval covers.
func TestSpawnBurst(t *testing.T) {
	b := content.DefaultBalance()
	b.EndlessBaseCount = 10
	b.EndlessBaseInterval = 0.1
	b.EndlessStartDelay = 0

	s := NewEndless("meadow", b)
	s = Advance(s, 2.0)

	if len(s.Enemies) != 10 {
		t.Fatalf("got %d enemies after burst tick, want 10", len(s.Enemies))
	}
	seen := make(map[string]bool)
	for _, e := range s.Enemies {
		if seen[e.ID] {
			t.Fatalf("duplicate enemy id %s", e.ID)
		}
		seen[e.ID] = true
	}
	if got := countEvents(s, EventSpawn); got != 10 {
		t.Fatalf("got %d spawn events, want 10", got)
	}
}

func TestWaveDelayBlocksSpawning(t *testing.T) {
	s := New("meadow-1", content.DefaultBalance())
	// meadow-1 wave 0 starts after 2 seconds.
	s = Advance(s, 1.0)
	if len(s.Enemies) != 0 {
		t.Fatalf("spawned %d enemies during start delay", len(s.Enemies))
	}
	s = Advance(s, 1.0)  // delay reaches zero
	s = Advance(s, 0.01) // first spawn
	if len(s.Enemies) != 1 {
		t.Fatalf("got %d enemies after delay elapsed, want 1", len(s.Enemies))
	}
}

func TestLeakDebitsLivesExactlyOnce(t *testing.T) {
	s := quietState(t)
	e := stagedEnemy("enemy-x", s.Map().Route().Total()-0.1, 50)
	e.Speed = 1.6
	e.CoreDamage = 2
	s.Enemies = append(s.Enemies, e)

	next := Advance(s, 1.0)

	if got, want := next.Lives, s.Lives-2; got != want {
		t.Errorf("lives = %d, want %d", got, want)
	}
	if len(next.Enemies) != 0 {
		t.Errorf("leaked enemy still present: %+v", next.Enemies)
	}
	if got := countEvents(next, EventLeak); got != 1 {
		t.Errorf("got %d leak events, want 1", got)
	}
	if next.Money != s.Money {
		t.Errorf("leak changed money: %d -> %d", s.Money, next.Money)
	}
}

func TestTargetSelection(t *testing.T) {
	mk := func(id string, progress, health float64) Enemy {
		e := stagedEnemy(id, progress, health)
		e.Pos = route.Vec{X: progress, Y: 0}
		return e
	}
	from := route.Vec{X: 0, Y: 0}

	tests := []struct {
		name    string
		mode    TargetMode
		enemies []Enemy
		want    string
	}{
		{"first picks furthest", TargetFirst, []Enemy{mk("a", 1, 50), mk("b", 3, 50)}, "b"},
		{"last picks nearest", TargetLast, []Enemy{mk("a", 1, 50), mk("b", 3, 50)}, "a"},
		{"strong picks healthiest", TargetStrong, []Enemy{mk("a", 1, 90), mk("b", 3, 50)}, "a"},
		{"first tie breaks by health", TargetFirst, []Enemy{mk("a", 2, 40), mk("b", 2, 70)}, "b"},
		{"strong tie breaks by progress", TargetStrong, []Enemy{mk("a", 1, 50), mk("b", 3, 50)}, "b"},
		{"full tie keeps slice order", TargetFirst, []Enemy{mk("a", 2, 50), mk("b", 2, 50)}, "a"},
		{"out of range ignored", TargetFirst, []Enemy{mk("a", 1, 50), mk("far", 100, 50)}, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{Enemies: tt.enemies}
			for i := 0; i < 50; i++ {
				got := s.selectTarget(from, 5, tt.mode)
				if got == nil || got.ID != tt.want {
					t.Fatalf("selectTarget picked %v, want %s", got, tt.want)
				}
			}
		})
	}
}

func TestSelectTargetEmptyRange(t *testing.T) {
	s := State{Enemies: []Enemy{stagedEnemy("a", 0, 50)}}
	s.Enemies[0].Pos = route.Vec{X: 100, Y: 100}
	if got := s.selectTarget(route.Vec{}, 3, TargetFirst); got != nil {
		t.Fatalf("selectTarget = %v, want nil", got)
	}
}

func TestSplashDamagesArea(t *testing.T) {
	s := quietState(t)
	r := s.Map().Route()
	target := stagedEnemy("enemy-a", 3.0, 100)
	near := stagedEnemy("enemy-b", 2.2, 100) // 0.8 cells from impact
	far := stagedEnemy("enemy-c", 0.5, 100)  // 2.5 cells from impact
	s.Enemies = append(s.Enemies, target, near, far)

	impact := r.Sample(3.0)
	s.Projectiles = append(s.Projectiles, Projectile{
		ID:           "shot-1",
		TowerID:      "tower-1",
		TowerType:    "cannon",
		Kind:         content.AttackSplash,
		TargetID:     "enemy-a",
		Damage:       20,
		Speed:        50,
		Pos:          impact.Add(route.Vec{X: 0, Y: -1}),
		SplashRadius: 1.1,
	})

	next := Advance(s, dt)

	want := map[string]float64{"enemy-a": 80, "enemy-b": 80, "enemy-c": 100}
	for _, e := range next.Enemies {
		if e.Health != want[e.ID] {
			t.Errorf("%s health = %v, want %v", e.ID, e.Health, want[e.ID])
		}
	}
	if len(next.Projectiles) != 0 {
		t.Errorf("projectile survived its impact tick")
	}
}

func TestSlowApplicationsMerge(t *testing.T) {
	s := quietState(t)
	s.Enemies = append(s.Enemies, stagedEnemy("enemy-a", 3.0, 100))
	impact := s.Map().Route().Sample(3.0)

	shot := func(id string, factor, duration float64) Projectile {
		return Projectile{
			ID:           id,
			TowerID:      "tower-1",
			TowerType:    "frost",
			Kind:         content.AttackSlow,
			TargetID:     "enemy-a",
			Damage:       1,
			Speed:        50,
			Pos:          impact.Add(route.Vec{X: 0, Y: -1}),
			SlowFactor:   factor,
			SlowDuration: duration,
		}
	}
	s.Projectiles = append(s.Projectiles, shot("shot-1", 0.6, 2.0), shot("shot-2", 0.4, 1.0))

	next := Advance(s, dt)

	if len(next.Enemies) != 1 {
		t.Fatalf("enemy died from staged slow shots")
	}
	e := next.Enemies[0]
	if e.SlowFactor != 0.4 {
		t.Errorf("slow factor = %v, want 0.4 (strongest wins)", e.SlowFactor)
	}
	if e.SlowRemaining != 2.0 {
		t.Errorf("slow remaining = %v, want 2.0 (longest wins)", e.SlowRemaining)
	}
	if e.Health != 98 {
		t.Errorf("health = %v, want 98 (both shots still damage)", e.Health)
	}
}

func TestSlowExpiryRestoresSpeed(t *testing.T) {
	s := quietState(t)
	e := stagedEnemy("enemy-a", 3.0, 100)
	e.SlowFactor = 0.5
	e.SlowRemaining = 0.05
	s.Enemies = append(s.Enemies, e)

	next := Advance(s, 0.1)
	if got := next.Enemies[0]; got.SlowFactor != 1 || got.SlowRemaining != 0 {
		t.Errorf("after expiry: factor=%v remaining=%v, want 1 and 0", got.SlowFactor, got.SlowRemaining)
	}
}

func TestDeathCreditsReward(t *testing.T) {
	s := quietState(t)
	e := stagedEnemy("enemy-a", 3.0, 5)
	e.Reward = 8
	s.Enemies = append(s.Enemies, e)
	s.Projectiles = append(s.Projectiles, Projectile{
		ID:       "shot-1",
		TowerID:  "tower-1",
		Kind:     content.AttackDirect,
		TargetID: "enemy-a",
		Damage:   10,
		Speed:    50,
		Pos:      s.Map().Route().Sample(3.0).Add(route.Vec{X: 0, Y: -1}),
	})

	next := Advance(s, dt)

	if got, want := next.Money, s.Money+8; got != want {
		t.Errorf("money = %d, want %d", got, want)
	}
	if len(next.Enemies) != 0 {
		t.Errorf("dead enemy still present")
	}
	if countEvents(next, EventDeath) != 1 {
		t.Errorf("expected exactly one death event, got %d", countEvents(next, EventDeath))
	}
}

func TestProjectileDroppedWhenTargetGone(t *testing.T) {
	s := quietState(t)
	s.Projectiles = append(s.Projectiles, Projectile{
		ID:       "shot-1",
		Kind:     content.AttackDirect,
		TargetID: "enemy-ghost",
		Damage:   10,
		Speed:    5,
		Pos:      route.Vec{X: 1, Y: 1},
	})

	next := Advance(s, dt)
	if len(next.Projectiles) != 0 {
		t.Fatalf("orphaned projectile survived")
	}
	if countEvents(next, EventHit) != 0 {
		t.Fatalf("orphaned projectile emitted a hit event")
	}
}

func TestBeamDamageIsContinuous(t *testing.T) {
	s := quietState(t)
	s.Towers = append(s.Towers, Tower{
		ID:    "tower-p",
		Type:  "prism",
		Cell:  route.Cell{Col: 5, Row: 4},
		Level: 1,
		Mode:  TargetFirst,
	})
	s.Enemies = append(s.Enemies, stagedEnemy("enemy-a", 3.0, 100))

	next := Advance(s, 0.5)

	// Prism does 18 damage per second.
	if got := next.Enemies[0].Health; got != 91 {
		t.Errorf("health after 0.5s beam = %v, want 91", got)
	}
	if len(next.Beams) != 1 {
		t.Fatalf("got %d beams, want 1", len(next.Beams))
	}
	if countEvents(next, EventFire) != 1 {
		t.Errorf("first beam tick should emit one fire event")
	}

	// Within the event interval the beam keeps dealing damage silently.
	after := Advance(next, 0.1)
	if got := after.Enemies[0].Health; math.Abs(got-89.2) > 1e-9 {
		t.Errorf("health after 0.1s more = %v, want 89.2", got)
	}
	if countEvents(after, EventFire) != 0 {
		t.Errorf("beam fire event not throttled")
	}
	if len(after.Beams) != 1 {
		t.Errorf("beam record not rebuilt while target held")
	}
}

func TestDirectTowerFiresOnCooldown(t *testing.T) {
	s := quietState(t)
	s.Towers = append(s.Towers, Tower{
		ID:    "tower-g",
		Type:  "gun",
		Cell:  route.Cell{Col: 5, Row: 4},
		Level: 1,
		Mode:  TargetFirst,
	})
	s.Enemies = append(s.Enemies, stagedEnemy("enemy-a", 3.0, 1000))

	next := Advance(s, dt)
	if len(next.Projectiles) != 1 {
		t.Fatalf("got %d projectiles, want 1", len(next.Projectiles))
	}
	if countEvents(next, EventFire) != 1 {
		t.Errorf("expected a fire event on launch")
	}
	// Gun fires 1.6/s; the next tick is inside the cooldown, and the first
	// shot is still in flight at projectile speed 9.
	after := Advance(next, dt)
	if len(after.Projectiles) != 1 {
		t.Fatalf("got %d projectiles inside cooldown, want 1", len(after.Projectiles))
	}
}

func TestWaveClearedAdvancesWithDelay(t *testing.T) {
	b := content.DefaultBalance()
	s := New("meadow-1", b)
	wave0 := s.Level().Waves[0]
	s.Spawned = wave0.Count
	s.WaveDelay = 0

	next := Advance(s, dt)

	if next.WaveIndex != 1 {
		t.Fatalf("wave index = %d, want 1", next.WaveIndex)
	}
	if next.Spawned != 0 || next.SpawnTimer != 0 {
		t.Errorf("spawn progress not reset: spawned=%d timer=%v", next.Spawned, next.SpawnTimer)
	}
	want := b.InterWavePause + s.Level().Waves[1].StartDelay
	if next.WaveDelay != want {
		t.Errorf("wave delay = %v, want %v", next.WaveDelay, want)
	}
	if countEvents(next, EventWaveCleared) != 1 {
		t.Errorf("expected a wave_cleared event")
	}
}

func TestWaveWaitsForFieldToClear(t *testing.T) {
	s := New("meadow-1", content.DefaultBalance())
	s.Spawned = s.Level().Waves[0].Count
	s.WaveDelay = 0
	s.Enemies = append(s.Enemies, stagedEnemy("enemy-a", 3.0, 100))

	next := Advance(s, dt)
	if next.WaveIndex != 0 {
		t.Fatalf("wave advanced with enemies still on the field")
	}
}

func TestClassicLastWaveWins(t *testing.T) {
	s := New("meadow-1", content.DefaultBalance())
	s.WaveIndex = len(s.Level().Waves) - 1
	s.Spawned = s.Level().Waves[s.WaveIndex].Count
	s.WaveDelay = 0

	next := Advance(s, dt)
	if next.Status != StatusWon {
		t.Fatalf("status = %s, want won", next.Status)
	}
	if countEvents(next, EventWon) != 1 {
		t.Errorf("expected a won event")
	}
}

func TestEndlessNeverWins(t *testing.T) {
	b := content.DefaultBalance()
	s := NewEndless("meadow", b)
	w, _ := s.CurrentWave()
	s.Spawned = w.Count
	s.WaveDelay = 0

	next := Advance(s, dt)
	if next.Status != StatusRunning {
		t.Fatalf("endless mode reached status %s", next.Status)
	}
	if next.WaveIndex != 1 {
		t.Fatalf("endless wave index = %d, want 1", next.WaveIndex)
	}
}

// When the last enemy of the last wave leaks and empties the life pool in
// the same tick, the loss must win and suppress the wave-complete check.
func TestLossTakesPrecedenceOverWin(t *testing.T) {
	s := New("meadow-1", content.DefaultBalance())
	s.WaveIndex = len(s.Level().Waves) - 1
	s.Spawned = s.Level().Waves[s.WaveIndex].Count
	s.WaveDelay = 0

	e := stagedEnemy("enemy-a", s.Map().Route().Total()-0.1, 100)
	e.Speed = 2.0
	e.CoreDamage = s.Lives
	s.Enemies = append(s.Enemies, e)

	next := Advance(s, 1.0)

	if next.Status != StatusLost {
		t.Fatalf("status = %s, want lost", next.Status)
	}
	if next.Lives != 0 {
		t.Errorf("lives = %d, want clamped to 0", next.Lives)
	}
	if countEvents(next, EventWon) != 0 {
		t.Errorf("won event emitted in a losing tick")
	}
	if countEvents(next, EventLost) != 1 {
		t.Errorf("expected exactly one lost event")
	}
}

func TestHitEmissionCapped(t *testing.T) {
	b := content.DefaultBalance()
	b.MaxHitEventsPerTick = 2
	b.MaxImpactEffectsPerTick = 2
	s := New("meadow-1", b)
	s.WaveDelay = 1e9

	impact := s.Map().Route().Sample(3.0)
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("enemy-%d", i)
		s.Enemies = append(s.Enemies, stagedEnemy(id, 3.0, 100))
		s.Projectiles = append(s.Projectiles, Projectile{
			ID:       fmt.Sprintf("shot-%d", i),
			Kind:     content.AttackDirect,
			TargetID: id,
			Damage:   20,
			Speed:    50,
			Pos:      impact.Add(route.Vec{X: 0, Y: -1}),
		})
	}

	next := Advance(s, dt)

	if got := countEvents(next, EventHit); got != 2 {
		t.Errorf("hit events = %d, want capped at 2", got)
	}
	// Damage is never throttled: every enemy took its hit.
	for _, e := range next.Enemies {
		if e.Health != 80 {
			t.Errorf("%s health = %v, want 80 despite emission cap", e.ID, e.Health)
		}
	}
}

func TestEventsReplacedEachTick(t *testing.T) {
	b := content.DefaultBalance()
	b.EndlessStartDelay = 0
	s := NewEndless("meadow", b)

	s = Advance(s, 0.01) // spawns the first enemy
	if len(s.RecentEvents) == 0 {
		t.Fatal("expected events on the spawning tick")
	}
	first := s.RecentEvents[0].ID

	s = Advance(s, 0.01) // quiet tick, inside the spawn interval
	for _, e := range s.RecentEvents {
		if e.ID == first {
			t.Fatal("event from a previous tick survived the batch swap")
		}
	}
}

func TestEffectsAgeAndExpire(t *testing.T) {
	s := quietState(t)
	s.addEffect(Effect{Kind: EffectHit, Duration: 0.1})
	s.addEffect(Effect{Kind: EffectDeath, Duration: 10})

	next := Advance(s, 0.2)
	if len(next.Effects) != 1 {
		t.Fatalf("got %d effects, want 1 (short one expired)", len(next.Effects))
	}
	if next.Effects[0].Kind != EffectDeath {
		t.Errorf("wrong effect survived: %s", next.Effects[0].Kind)
	}
	if next.Effects[0].Age != 0.2 {
		t.Errorf("surviving effect age = %v, want 0.2", next.Effects[0].Age)
	}
}
