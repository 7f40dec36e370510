// Package bastion adapts the tower-defense simulation core to the
// platform's game interface. All rules live in the sim package; this layer
// owns the build cursor, input mapping, pacing, and rendering.
package bastion

import (
	"github.com/vovakirdan/tui-bastion/internal/content"
	"github.com/vovakirdan/tui-bastion/internal/core"
	"github.com/vovakirdan/tui-bastion/internal/registry"
	"github.com/vovakirdan/tui-bastion/internal/route"
	"github.com/vovakirdan/tui-bastion/internal/sim"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// Game implements the tower-defense game on top of the sim core.
type Game struct {
	mode    Mode
	state   sim.State
	balance content.Balance

	tick  uint64
	dt    float64
	fast  bool // fast-forward doubles simulated time per tick
	score int

	kills        int
	wavesCleared int

	// Build cursor state
	cursor     route.Cell
	buildIndex int // index into content.BuildOrder()

	// Layout
	screenW    int
	screenH    int
	mapOffsetX int
	mapOffsetY int
	tooSmall   bool

	paused bool
}

// Package-level selection set by menus before the game is created
// (same pattern as the other platform menus).
var (
	selectedLevel   = "meadow-1"
	selectedMap     = "meadow"
	selectedBalance *content.Balance
)

// SetLevel selects the level for the next classic game.
func SetLevel(levelID string) {
	selectedLevel = levelID
}

// SelectedLevel returns the currently selected level id.
func SelectedLevel() string {
	return selectedLevel
}

// SetMap selects the map for the next endless game.
func SetMap(mapID string) {
	selectedMap = mapID
}

// SelectedMap returns the currently selected map id.
func SelectedMap() string {
	return selectedMap
}

// SetBalance overrides the gameplay tuning for subsequently created games.
// Nil restores the built-in defaults.
func SetBalance(b *content.Balance) {
	selectedBalance = b
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("bastion", func() registry.Game {
		return New()
	})
	registry.Register("bastion_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "bastion_endless"
	}
	return "bastion"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Bastion (Endless)"
	}
	return "Bastion"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.balance = content.DefaultBalance()
	if selectedBalance != nil {
		g.balance = *selectedBalance
	}

	if g.mode == ModeEndless {
		g.state = sim.NewEndless(selectedMap, g.balance)
	} else {
		g.state = sim.New(selectedLevel, g.balance)
	}

	g.tick = 0
	g.dt = 1.0 / float64(cfg.TickRate)
	g.fast = false
	g.score = 0
	g.kills = 0
	g.wavesCleared = 0
	g.buildIndex = 0
	g.paused = false

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.layout()

	g.cursor = g.findFreeCell()
}

// layout computes the map placement on screen. Each grid cell takes two
// columns so the playfield is roughly square on common terminal fonts.
func (g *Game) layout() {
	m := g.state.Map()
	requiredW := m.Cols*cellW + 2
	requiredH := m.Rows + hudHeight + footerHeight
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.mapOffsetX = (g.screenW - m.Cols*cellW) / 2
	g.mapOffsetY = hudHeight
}

// findFreeCell picks the first buildable cell scanning from the grid
// center outward, so the cursor never starts on the path.
func (g *Game) findFreeCell() route.Cell {
	m := g.state.Map()
	start := route.Cell{Col: m.Cols / 2, Row: m.Rows / 2}
	if !m.IsPathCell(start) && g.state.TowerAt(start) == nil {
		return start
	}
	for radius := 1; radius < m.Cols+m.Rows; radius++ {
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				c := route.Cell{Col: start.Col + dc, Row: start.Row + dr}
				if m.InBounds(c) && !m.IsPathCell(c) && g.state.TowerAt(c) == nil {
					return c
				}
			}
		}
	}
	return start
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.state.Status != sim.StatusRunning {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(1.0/g.dt + 0.5),
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.state.Status != sim.StatusRunning {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	steps := 1
	if g.fast {
		steps = 2
	}
	for i := 0; i < steps; i++ {
		g.state = sim.Advance(g.state, g.dt)
		g.consumeEvents()
	}

	return core.StepResult{State: g.State()}
}

// processInput maps platform actions to cursor moves and sim commands.
func (g *Game) processInput(input core.InputFrame) {
	m := g.state.Map()

	switch {
	case input.Has(core.ActionUp):
		g.cursor.Row = core.Max(0, g.cursor.Row-1)
	case input.Has(core.ActionDown):
		g.cursor.Row = core.Min(m.Rows-1, g.cursor.Row+1)
	case input.Has(core.ActionLeft):
		g.cursor.Col = core.Max(0, g.cursor.Col-1)
	case input.Has(core.ActionRight):
		g.cursor.Col = core.Min(m.Cols-1, g.cursor.Col+1)
	}

	if input.Has(core.ActionNextTower) {
		g.buildIndex = (g.buildIndex + 1) % len(content.BuildOrder())
	}
	if input.Has(core.ActionSpeedToggle) {
		g.fast = !g.fast
	}

	if input.Has(core.ActionConfirm) {
		g.state = sim.PlaceTower(g.state, g.selectedTowerType(), g.cursor)
	}
	if t := g.state.TowerAt(g.cursor); t != nil {
		if input.Has(core.ActionUpgrade) {
			g.state = sim.UpgradeTower(g.state, t.ID)
		}
		if input.Has(core.ActionSell) {
			g.state = sim.SellTower(g.state, t.ID)
		}
		if input.Has(core.ActionTargetMode) {
			g.state = sim.CycleTargetMode(g.state, t.ID)
		}
	}
}

// consumeEvents folds the last transition's event batch into the score.
func (g *Game) consumeEvents() {
	for _, e := range g.state.RecentEvents {
		switch e.Type {
		case sim.EventDeath:
			g.kills++
			g.score += 10
		case sim.EventWaveCleared:
			g.wavesCleared++
			g.score += 100
		case sim.EventWon:
			g.score += 500
		}
	}
}

// selectedTowerType returns the tower id the build palette points at.
func (g *Game) selectedTowerType() string {
	return content.BuildOrder()[g.buildIndex]
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state.Status != sim.StatusRunning,
		Won:      g.state.Status == sim.StatusWon,
		Paused:   g.paused,
	}
}
