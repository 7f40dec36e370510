// Package sim is the deterministic fixed-step core of the tower-defense
// game. A match is a single State value; the engine and the player commands
// are pure transitions from one State to the next. No I/O, no clock, no
// randomness: given the same state and dt, Advance always produces a
// bit-identical result.
package sim

import (
	"math"

	"github.com/vovakirdan/tui-bastion/internal/content"
	"github.com/vovakirdan/tui-bastion/internal/core"
	"github.com/vovakirdan/tui-bastion/internal/route"
)

// Status is the match outcome state. Once won or lost, every transition is
// a no-op returning the state unchanged.
type Status string

const (
	StatusRunning Status = "running"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Mode selects how waves are scheduled.
type Mode string

const (
	ModeClassic Mode = "classic" // fixed wave table from a level
	ModeEndless Mode = "endless" // waves synthesized from the wave index
)

// TargetMode is a tower's policy for choosing among in-range enemies.
type TargetMode string

const (
	TargetFirst  TargetMode = "first"  // greatest route progress
	TargetLast   TargetMode = "last"   // least route progress
	TargetStrong TargetMode = "strong" // highest current health
)

// Next returns the following mode in the fixed cycle first -> last ->
// strong -> first.
func (m TargetMode) Next() TargetMode {
	switch m {
	case TargetFirst:
		return TargetLast
	case TargetLast:
		return TargetStrong
	case TargetStrong:
		return TargetFirst
	default:
		return TargetFirst
	}
}

// EventType classifies a game event for audio/UI consumers.
type EventType string

const (
	EventSpawn       EventType = "spawn"
	EventFire        EventType = "fire"
	EventHit         EventType = "hit"
	EventDeath       EventType = "death"
	EventLeak        EventType = "leak" // enemy reached the core
	EventPlace       EventType = "place"
	EventUpgrade     EventType = "upgrade"
	EventSell        EventType = "sell"
	EventTargetMode  EventType = "target_mode"
	EventWaveCleared EventType = "wave_cleared"
	EventWon         EventType = "won"
	EventLost        EventType = "lost"
)

// Event is an immutable notification describing something that happened
// during the last tick or command. The batch is replaced wholesale on every
// transition; consumers must drain it before the next call.
type Event struct {
	ID        string
	Type      EventType
	TowerType string // set for tower-related events, empty otherwise
}

// EffectKind classifies a visual effect.
type EffectKind string

const (
	EffectSpawn  EffectKind = "spawn"
	EffectHit    EffectKind = "hit"
	EffectSplash EffectKind = "splash"
	EffectChill  EffectKind = "chill"
	EffectDeath  EffectKind = "death"
	EffectBuild  EffectKind = "build"
	EffectSell   EffectKind = "sell"
)

// Effect is a purely presentational expanding ring. It lives in state only
// so the engine and the renderer agree on elapsed lifetime; the engine
// prunes it once age reaches duration.
type Effect struct {
	ID          string
	Kind        EffectKind
	Pos         route.Vec
	Age         float64
	Duration    float64
	StartRadius float64
	EndRadius   float64
	Color       core.Color
}

// RadiusNow returns the ring radius at the effect's current age.
func (e Effect) RadiusNow() float64 {
	if e.Duration <= 0 {
		return e.EndRadius
	}
	t := e.Age / e.Duration
	if t > 1 {
		t = 1
	}
	return e.StartRadius + (e.EndRadius-e.StartRadius)*t
}

// Enemy is a live enemy instance. Position is always derived from Progress
// via route sampling; health is fractional because beam damage accrues
// continuously.
type Enemy struct {
	ID         string
	Type       string
	Shape      content.EnemyShape
	Color      core.Color
	Radius     float64
	Speed      float64
	Reward     int
	CoreDamage int
	MaxHealth  int

	Health   float64
	Progress float64 // arc length traveled along the route
	Pos      route.Vec

	// Slow status. Factor 1.0 means unaffected; lower is slower.
	SlowFactor    float64
	SlowRemaining float64
}

// Tower is a live tower instance. The placement cell is immutable once
// placed; Invested tracks everything spent on it for the sell refund.
type Tower struct {
	ID       string
	Type     string
	Cell     route.Cell
	Level    int
	Mode     TargetMode
	Cooldown float64 // seconds until the next shot (or beam fire event)
	AimAngle float64 // last computed facing, kept while there is no target
	Invested int
}

// Pos returns the tower's world-space center.
func (t Tower) Pos() route.Vec {
	return t.Cell.Center()
}

// Projectile is an in-flight shot locked onto a specific enemy. It tracks
// the enemy, not a point; if the target vanishes the projectile is dropped.
type Projectile struct {
	ID        string
	TowerID   string
	TowerType string
	Kind      content.AttackKind
	TargetID  string
	Damage    int
	Speed     float64
	Pos       route.Vec
	Radius    float64
	Color     core.Color

	SplashRadius float64 // splash shots only
	SlowFactor   float64 // slow shots only
	SlowDuration float64
}

// Beam is an ephemeral tower-to-target ray, rebuilt every tick while a
// beam tower holds a target. Never carried across ticks.
type Beam struct {
	TowerID   string
	TowerType string
	From, To  route.Vec
	Color     core.Color
}

// angleTo returns the facing angle from one point toward another.
func angleTo(from, to route.Vec) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}
