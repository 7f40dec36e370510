package bastion

import (
	"fmt"

	"github.com/vovakirdan/tui-bastion/internal/content"
	"github.com/vovakirdan/tui-bastion/internal/core"
	"github.com/vovakirdan/tui-bastion/internal/route"
	"github.com/vovakirdan/tui-bastion/internal/sim"
)

const (
	cellW        = 2 // screen columns per grid cell
	hudHeight    = 2
	footerHeight = 2
)

var shapeRunes = map[content.EnemyShape]rune{
	content.ShapeCircle:   '●',
	content.ShapeSquare:   '■',
	content.ShapeDiamond:  '◆',
	content.ShapeTriangle: '▲',
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMap(dst)
	g.renderTowers(dst)
	g.renderBeams(dst)
	g.renderEnemies(dst)
	g.renderProjectiles(dst)
	g.renderEffects(dst)
	g.renderCursor(dst)
	g.renderFooter(dst)

	switch {
	case g.state.Status == sim.StatusWon:
		g.renderOverlay(dst, "Bastion held!", fmt.Sprintf("Final Score: %d - press R to restart", g.score))
	case g.state.Status == sim.StatusLost:
		g.renderOverlay(dst, "The core has fallen", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// cellOrigin returns the top-left screen position of a grid cell.
func (g *Game) cellOrigin(c route.Cell) (int, int) {
	return g.mapOffsetX + c.Col*cellW, g.mapOffsetY + c.Row
}

// worldToScreen projects a world-space point into screen coordinates.
func (g *Game) worldToScreen(v route.Vec) (int, int) {
	return g.mapOffsetX + int(v.X*cellW), g.mapOffsetY + int(v.Y)
}

func (g *Game) renderHUD(dst *core.Screen) {
	waveNum := g.state.WaveIndex + 1
	waveLabel := fmt.Sprintf("%d/%d", waveNum, g.state.WaveCount())
	if g.state.WaveCount() < 0 {
		waveLabel = fmt.Sprintf("%d", waveNum)
	}
	speed := ""
	if g.fast {
		speed = "  >>"
	}
	hud := fmt.Sprintf(" %s  $%d  Lives: %d  Wave: %s  Score: %d%s",
		g.Title(), g.state.Money, g.state.Lives, waveLabel, g.score, speed)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderMap(dst *core.Screen) {
	m := g.state.Map()
	for _, c := range m.PathCells() {
		x, y := g.cellOrigin(c)
		dst.SetColored(x, y, '░', core.ColorGray)
		dst.SetColored(x+1, y, '░', core.ColorGray)
	}
	cells := m.PathCells()
	if len(cells) > 0 {
		x, y := g.cellOrigin(cells[0])
		dst.SetColored(x, y, '»', core.ColorBrightGreen)
		x, y = g.cellOrigin(cells[len(cells)-1])
		dst.SetColored(x+1, y, '◉', core.ColorBrightRed)
	}
}

func (g *Game) renderTowers(dst *core.Screen) {
	for _, t := range g.state.Towers {
		arch := content.Tower(t.Type)
		x, y := g.cellOrigin(t.Cell)
		dst.SetColored(x, y, arch.Rune, arch.Color)
		if t.Level > 1 {
			dst.SetColored(x+1, y, rune('0'+t.Level), core.ColorBrightWhite)
		}
	}
}

func (g *Game) renderEnemies(dst *core.Screen) {
	for _, e := range g.state.Enemies {
		x, y := g.worldToScreen(e.Pos)
		r := shapeRunes[e.Shape]
		if r == 0 {
			r = '?'
		}
		color := e.Color
		if e.SlowRemaining > 0 {
			color = core.ColorBrightCyan // chilled
		}
		dst.SetColored(x, y, r, color)
	}
}

func (g *Game) renderProjectiles(dst *core.Screen) {
	for _, p := range g.state.Projectiles {
		x, y := g.worldToScreen(p.Pos)
		dst.SetColored(x, y, '•', p.Color)
	}
}

// renderBeams traces each beam by sampling along the tower-target segment.
func (g *Game) renderBeams(dst *core.Screen) {
	for _, b := range g.state.Beams {
		delta := b.To.Sub(b.From)
		steps := int(delta.Len()*float64(cellW)) + 1
		for i := 1; i < steps; i++ {
			t := float64(i) / float64(steps)
			x, y := g.worldToScreen(b.From.Add(delta.Scale(t)))
			dst.SetColored(x, y, '·', b.Color)
		}
	}
}

// renderEffects draws each expanding ring as its four compass points plus
// diagonals, which reads well enough at terminal resolution.
func (g *Game) renderEffects(dst *core.Screen) {
	offsets := [][2]float64{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{0.7, 0.7}, {0.7, -0.7}, {-0.7, 0.7}, {-0.7, -0.7},
	}
	for _, e := range g.state.Effects {
		r := e.RadiusNow()
		for _, o := range offsets {
			p := route.Vec{X: e.Pos.X + o[0]*r, Y: e.Pos.Y + o[1]*r}
			x, y := g.worldToScreen(p)
			if y >= g.mapOffsetY && y < g.mapOffsetY+g.state.Map().Rows {
				dst.SetColored(x, y, '·', e.Color)
			}
		}
	}
}

func (g *Game) renderCursor(dst *core.Screen) {
	x, y := g.cellOrigin(g.cursor)
	color := core.ColorBrightGreen
	if !sim.CanPlace(g.state, g.selectedTowerType(), g.cursor) && g.state.TowerAt(g.cursor) == nil {
		color = core.ColorBrightRed
	}
	dst.SetColored(x-1, y, '[', color)
	dst.SetColored(x+cellW, y, ']', color)
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - footerHeight

	// Build palette with the selected entry bracketed.
	px := 1
	for i, id := range content.BuildOrder() {
		arch := content.Tower(id)
		label := fmt.Sprintf("%s $%d", arch.Name, arch.Cost)
		if i == g.buildIndex {
			label = "[" + label + "]"
			dst.DrawTextColored(px, y, label, arch.Color)
		} else {
			dst.DrawText(px, y, label)
		}
		px += len([]rune(label)) + 2
	}

	hint := " move:←↑↓→  place:enter  tower:tab  upgrade:u  sell:x  target:t  speed:f  pause:p"
	if t := g.state.TowerAt(g.cursor); t != nil {
		arch := content.Tower(t.Type)
		stats := content.Stats(arch, t.Level, g.state.Balance)
		up := "max"
		if cost, ok := content.UpgradeCost(arch, t.Level, g.state.Balance); ok {
			up = fmt.Sprintf("$%d", cost)
		}
		hint = fmt.Sprintf(" %s L%d  dmg %d  rng %.1f  target:%s  upgrade:%s  sell:$%d",
			arch.Name, t.Level, stats.Damage, stats.Range, t.Mode, up,
			content.SellValue(t.Invested, g.state.Balance))
	}
	dst.DrawText(0, y+1, hint)
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	maxLen := len([]rune(line1))
	if l := len([]rune(line2)); l > maxLen {
		maxLen = l
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
