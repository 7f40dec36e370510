package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-bastion/internal/content"
	"github.com/vovakirdan/tui-bastion/internal/route"
)

// State is the whole match: entities, counters, economy, and wave progress.
// Transitions never mutate their input; they clone, modify the clone, and
// return it, so an old State stays valid (and reusable in tests) forever.
// The map/level pointers reference immutable static content and are shared
// between clones.
type State struct {
	Status Status
	Mode   Mode

	LevelID string // empty in endless mode
	MapID   string

	Money int
	Lives int

	// Wave progress. WaveIndex only increases; WaveDelay counts down the
	// current wave's start delay, SpawnTimer the gap to the next spawn,
	// Spawned how much of the quota has been emitted.
	WaveIndex  int
	WaveDelay  float64
	SpawnTimer float64
	Spawned    int

	Time float64 // total simulated seconds

	Enemies     []Enemy
	Towers      []Tower
	Projectiles []Projectile
	Beams       []Beam
	Effects     []Effect

	// RecentEvents holds exactly the events of the most recent transition.
	RecentEvents []Event

	// Monotonic id counters, never rewound or reused within a session.
	NextEnemyID      uint64
	NextTowerID      uint64
	NextProjectileID uint64
	NextEffectID     uint64
	NextEventID      uint64

	Balance content.Balance

	level   *content.Level // nil in endless mode
	gameMap *content.Map
}

// New creates a fresh classic-mode match for the given level.
func New(levelID string, b content.Balance) State {
	lvl := content.LevelByID(levelID)
	m := content.MapByID(lvl.MapID)

	s := State{
		Status:  StatusRunning,
		Mode:    ModeClassic,
		LevelID: lvl.ID,
		MapID:   m.ID,
		Money:   b.StartMoney,
		Lives:   b.StartLives,
		Balance: b,
		level:   lvl,
		gameMap: m,
	}
	if lvl.StartMoney > 0 {
		s.Money = lvl.StartMoney
	}
	if lvl.StartLives > 0 {
		s.Lives = lvl.StartLives
	}
	s.placeInitialTowers()
	if w, ok := s.CurrentWave(); ok {
		s.WaveDelay = w.StartDelay
	}
	return s
}

// NewEndless creates a fresh endless-mode match on the given map.
func NewEndless(mapID string, b content.Balance) State {
	m := content.MapByID(mapID)

	s := State{
		Status:  StatusRunning,
		Mode:    ModeEndless,
		MapID:   m.ID,
		Money:   b.StartMoney,
		Lives:   b.StartLives,
		Balance: b,
		gameMap: m,
	}
	s.placeInitialTowers()
	if w, ok := s.CurrentWave(); ok {
		s.WaveDelay = w.StartDelay
	}
	return s
}

// placeInitialTowers seeds the map's pre-built towers. They count as fully
// paid so selling them refunds normally.
func (s *State) placeInitialTowers() {
	for _, p := range s.gameMap.InitialTowers {
		arch := content.Tower(p.TowerType)
		s.Towers = append(s.Towers, Tower{
			ID:       s.mintTowerID(),
			Type:     arch.ID,
			Cell:     p.Cell,
			Level:    1,
			Mode:     TargetFirst,
			Invested: arch.Cost,
		})
	}
}

// Map returns the static map this match is played on.
func (s *State) Map() *content.Map {
	return s.gameMap
}

// Level returns the static level, or nil in endless mode.
func (s *State) Level() *content.Level {
	return s.level
}

// CurrentWave returns the wave the spawn schedule is working through.
// The second return is false only in classic mode once the table is
// exhausted; endless mode always synthesizes another wave.
func (s *State) CurrentWave() (content.Wave, bool) {
	if s.Mode == ModeEndless {
		return content.EndlessWave(s.WaveIndex, s.Balance), true
	}
	if s.WaveIndex < len(s.level.Waves) {
		return s.level.Waves[s.WaveIndex], true
	}
	return content.Wave{}, false
}

// WaveCount returns the number of scheduled waves, or -1 in endless mode.
func (s *State) WaveCount() int {
	if s.Mode == ModeEndless {
		return -1
	}
	return len(s.level.Waves)
}

// TowerAt returns the tower occupying the given cell, or nil.
func (s *State) TowerAt(c route.Cell) *Tower {
	for i := range s.Towers {
		if s.Towers[i].Cell == c {
			return &s.Towers[i]
		}
	}
	return nil
}

// TowerByID returns the tower with the given id, or nil.
func (s *State) TowerByID(id string) *Tower {
	for i := range s.Towers {
		if s.Towers[i].ID == id {
			return &s.Towers[i]
		}
	}
	return nil
}

// enemyByID returns the enemy with the given id, or nil.
func (s *State) enemyByID(id string) *Enemy {
	for i := range s.Enemies {
		if s.Enemies[i].ID == id {
			return &s.Enemies[i]
		}
	}
	return nil
}

// clone returns a deep copy of the state. Entity slices are copied; the
// static map/level pointers are shared because their targets are immutable.
func (s State) clone() State {
	n := s
	n.Enemies = append([]Enemy(nil), s.Enemies...)
	n.Towers = append([]Tower(nil), s.Towers...)
	n.Projectiles = append([]Projectile(nil), s.Projectiles...)
	n.Beams = append([]Beam(nil), s.Beams...)
	n.Effects = append([]Effect(nil), s.Effects...)
	n.RecentEvents = append([]Event(nil), s.RecentEvents...)
	return n
}

func (s *State) mintEnemyID() string {
	s.NextEnemyID++
	return fmt.Sprintf("enemy-%d", s.NextEnemyID)
}

func (s *State) mintTowerID() string {
	s.NextTowerID++
	return fmt.Sprintf("tower-%d", s.NextTowerID)
}

func (s *State) mintProjectileID() string {
	s.NextProjectileID++
	return fmt.Sprintf("shot-%d", s.NextProjectileID)
}

// emit appends an event to the current transition's batch.
func (s *State) emit(t EventType, towerType string) {
	s.NextEventID++
	s.RecentEvents = append(s.RecentEvents, Event{
		ID:        fmt.Sprintf("event-%d", s.NextEventID),
		Type:      t,
		TowerType: towerType,
	})
}

// addEffect appends a visual effect to the state.
func (s *State) addEffect(e Effect) {
	s.NextEffectID++
	e.ID = fmt.Sprintf("effect-%d", s.NextEffectID)
	s.Effects = append(s.Effects, e)
}
