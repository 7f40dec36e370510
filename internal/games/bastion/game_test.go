package bastion

import (
	"testing"

	"github.com/vovakirdan/tui-bastion/internal/content"
	"github.com/vovakirdan/tui-bastion/internal/core"
	"github.com/vovakirdan/tui-bastion/internal/registry"
	"github.com/vovakirdan/tui-bastion/internal/sim"
)

var testCfg = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}

func TestDeterminism(t *testing.T) {
	// Two games fed the same input sequence must produce identical snapshots.
	run := func() Snapshot {
		g := New()
		g.Reset(testCfg)
		input := core.NewInputFrame()
		for i := 0; i < 600; i++ {
			input.Clear()
			switch i {
			case 10:
				input.Set(core.ActionRight)
			case 12:
				input.Set(core.ActionConfirm) // place a gun
			case 20:
				input.Set(core.ActionNextTower)
			case 100:
				input.Set(core.ActionUpgrade)
			case 300:
				input.Set(core.ActionSpeedToggle)
			}
			g.Step(input)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("snapshots diverged:\n%+v\nvs\n%+v", s1, s2)
	}
}

func TestCursorStaysOnGrid(t *testing.T) {
	g := New()
	g.Reset(testCfg)
	m := g.state.Map()

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	input.Set(core.ActionUp)
	for i := 0; i < 100; i++ {
		g.Step(input)
	}
	if g.cursor.Col != 0 || g.cursor.Row != 0 {
		t.Errorf("cursor = %v, want pinned to (0,0)", g.cursor)
	}

	input.Clear()
	input.Set(core.ActionRight)
	input.Set(core.ActionDown)
	for i := 0; i < 100; i++ {
		g.Step(input)
	}
	if g.cursor.Col != m.Cols-1 || g.cursor.Row != m.Rows-1 {
		t.Errorf("cursor = %v, want pinned to bottom-right", g.cursor)
	}
}

func TestCursorStartsOffPath(t *testing.T) {
	for _, mk := range []func() *Game{New, NewEndless} {
		g := mk()
		g.Reset(testCfg)
		if g.state.Map().IsPathCell(g.cursor) {
			t.Errorf("%s cursor starts on the path at %v", g.ID(), g.cursor)
		}
	}
}

func TestPlaceTowerViaInput(t *testing.T) {
	g := New()
	g.Reset(testCfg)
	moneyBefore := g.state.Money

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)

	if g.state.TowerAt(g.cursor) == nil {
		t.Fatal("confirm on a free cell did not place a tower")
	}
	cost := content.Tower(content.BuildOrder()[0]).Cost
	if g.state.Money != moneyBefore-cost {
		t.Errorf("money = %d, want %d", g.state.Money, moneyBefore-cost)
	}
}

func TestBuildPaletteCycles(t *testing.T) {
	g := New()
	g.Reset(testCfg)

	order := content.BuildOrder()
	input := core.NewInputFrame()
	input.Set(core.ActionNextTower)
	for i := 1; i <= len(order); i++ {
		g.Step(input)
		want := order[i%len(order)]
		if got := g.selectedTowerType(); got != want {
			t.Fatalf("after %d cycles selected %q, want %q", i, got, want)
		}
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testCfg)

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)
	if !g.paused {
		t.Fatal("pause action ignored")
	}

	timeBefore := g.state.Time
	input.Clear()
	for i := 0; i < 30; i++ {
		g.Step(input)
	}
	if g.state.Time != timeBefore {
		t.Errorf("simulation advanced while paused: %v -> %v", timeBefore, g.state.Time)
	}
}

func TestFastForwardDoublesSimTime(t *testing.T) {
	slow := New()
	slow.Reset(testCfg)
	fast := New()
	fast.Reset(testCfg)

	input := core.NewInputFrame()
	input.Set(core.ActionSpeedToggle)
	fast.Step(input)

	input.Clear()
	for i := 0; i < 30; i++ {
		slow.Step(input)
		fast.Step(input)
	}
	// The fast game stepped one extra tick's worth at toggle time too.
	if fast.state.Time <= slow.state.Time {
		t.Errorf("fast-forward time %v not ahead of normal %v", fast.state.Time, slow.state.Time)
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testCfg)

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm) // place a tower so state diverges from fresh
	g.Step(input)
	towers := len(g.state.Towers)

	input.Clear()
	input.Set(core.ActionRestart)
	g.Step(input)
	if len(g.state.Towers) != towers {
		t.Fatal("restart applied mid-game")
	}

	g.state.Status = sim.StatusLost
	g.Step(input)
	if g.state.Status != sim.StatusRunning {
		t.Fatal("restart after defeat did not reset the match")
	}
	if len(g.state.Towers) != 0 {
		t.Fatal("restart kept towers from the previous match")
	}
}

func TestScoreAccumulatesFromEvents(t *testing.T) {
	g := New()
	g.Reset(testCfg)
	g.state.WaveDelay = 1e9
	g.state.Enemies = append(g.state.Enemies, sim.Enemy{
		ID:         "enemy-test",
		Type:       "scout",
		Health:     1,
		MaxHealth:  30,
		SlowFactor: 1,
		Reward:     8,
		Pos:        g.state.Map().Route().Start(),
	})
	g.state.Projectiles = append(g.state.Projectiles, sim.Projectile{
		ID:       "shot-test",
		Kind:     content.AttackDirect,
		TargetID: "enemy-test",
		Damage:   10,
		Speed:    100,
		Pos:      g.state.Map().Route().Start(),
	})

	g.Step(core.NewInputFrame())

	if g.kills != 1 {
		t.Fatalf("kills = %d, want 1", g.kills)
	}
	if g.score != 10 {
		t.Fatalf("score = %d, want 10", g.score)
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	for _, mk := range []func() *Game{New, NewEndless} {
		g := mk()
		g.Reset(testCfg)
		screen := core.NewScreen(testCfg.ScreenW, testCfg.ScreenH)

		input := core.NewInputFrame()
		input.Set(core.ActionConfirm)
		g.Step(input)
		input.Clear()
		for i := 0; i < 200; i++ {
			g.Step(input)
			g.Render(screen)
		}
	}
}

func TestTooSmallScreenBlocksPlay(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 30})
	if !g.tooSmall {
		t.Fatal("10x5 screen should be flagged too small")
	}
	timeBefore := g.state.Time
	g.Step(core.NewInputFrame())
	if g.state.Time != timeBefore {
		t.Error("simulation advanced on a too-small screen")
	}
}

func TestRegistryRegistration(t *testing.T) {
	for _, id := range []string{"bastion", "bastion_endless"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("registry lookup %q failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("created game reports id %q, want %q", g.ID(), id)
		}
	}
}
