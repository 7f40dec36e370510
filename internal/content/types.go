// Package content holds the immutable static tables the simulation is built
// from: tower and enemy archetypes, maps, and level wave schedules. Tables
// are versioned with the code; an unknown id or malformed map geometry is a
// content bug and panics at lookup/derivation time rather than being papered
// over with defaults.
package content

import (
	"sync"

	"github.com/vovakirdan/tui-bastion/internal/core"
	"github.com/vovakirdan/tui-bastion/internal/route"
)

// AttackKind is the closed set of tower attack behaviors. Every switch on
// it must be exhaustive; adding a kind must fail loudly at each branch site.
type AttackKind string

const (
	AttackDirect AttackKind = "direct" // single-target projectile
	AttackSplash AttackKind = "splash" // projectile with area damage at impact
	AttackSlow   AttackKind = "slow"   // projectile carrying a slow payload
	AttackBeam   AttackKind = "beam"   // continuous travel-time-free damage
)

// EnemyShape is the closed set of enemy silhouettes used by the renderer.
type EnemyShape string

const (
	ShapeCircle   EnemyShape = "circle"
	ShapeSquare   EnemyShape = "square"
	ShapeDiamond  EnemyShape = "diamond"
	ShapeTriangle EnemyShape = "triangle"
)

// TowerArchetype is the static template a live tower copies its base
// attributes from. All distances are in cells, rates in per-second units.
type TowerArchetype struct {
	ID              string
	Name            string
	Kind            AttackKind
	Range           float64
	FireRate        float64 // shots per second; beam towers use it only for fire-event pacing
	ProjectileSpeed float64 // cells per second; unused by beam towers
	Damage          int     // per shot, or per second for beam towers
	Cost            int
	FootprintRadius float64

	// Kind-specific payloads.
	SplashRadius float64 // AttackSplash only
	SlowFactor   float64 // AttackSlow only; 1.0 = no slow, lower = slower
	SlowDuration float64 // AttackSlow only, seconds

	Rune  rune
	Color core.Color
}

// EnemyArchetype is the static template a live enemy copies its base
// attributes from.
type EnemyArchetype struct {
	ID         string
	Name       string
	Shape      EnemyShape
	Color      core.Color
	Radius     float64
	MaxHealth  int
	Speed      float64 // cells per second along the route
	Reward     int     // money credited on death
	CoreDamage int     // lives debited on reaching the path end
}

// Wave is one scheduled batch of enemies of a single type.
type Wave struct {
	EnemyType     string
	Count         int
	SpawnInterval float64 // seconds between spawns
	StartDelay    float64 // seconds before the first spawn
}

// Placement is a pre-built tower on a map.
type Placement struct {
	TowerType string
	Cell      route.Cell
}

// Map is a static grid with a waypoint path and optional initial towers.
// The derived route and blocked-cell set are computed once on first use and
// shared; a Map value is immutable after load.
type Map struct {
	ID            string
	Name          string
	Cols, Rows    int
	Waypoints     []route.Cell
	InitialTowers []Placement

	once      sync.Once
	path      *route.Route
	pathCells []route.Cell
	blocked   map[route.Cell]bool
}

// derive computes the route and blocked-cell set. Malformed waypoints are a
// configuration error and abort loudly.
func (m *Map) derive() {
	m.once.Do(func() {
		r, err := route.Build(m.Waypoints)
		if err != nil {
			panic("content: map " + m.ID + ": " + err.Error())
		}
		m.path = r
		m.pathCells = route.ExpandToCells(m.Waypoints)
		m.blocked = make(map[route.Cell]bool, len(m.pathCells))
		for _, c := range m.pathCells {
			m.blocked[c] = true
		}
	})
}

// Route returns the arc-length-parameterized route enemies walk.
func (m *Map) Route() *route.Route {
	m.derive()
	return m.path
}

// PathCells returns the ordered grid cells the path traverses.
func (m *Map) PathCells() []route.Cell {
	m.derive()
	return m.pathCells
}

// IsPathCell reports whether a cell is traversed by the path and therefore
// blocked for tower placement.
func (m *Map) IsPathCell(c route.Cell) bool {
	m.derive()
	return m.blocked[c]
}

// InBounds reports whether a cell lies inside the map grid.
func (m *Map) InBounds(c route.Cell) bool {
	return c.Col >= 0 && c.Col < m.Cols && c.Row >= 0 && c.Row < m.Rows
}

// Level associates a wave schedule with a map, optionally overriding the
// starting economy. Zero overrides mean "use the balance default".
type Level struct {
	ID         string
	Name       string
	MapID      string
	Waves      []Wave
	StartMoney int
	StartLives int
}
