package content

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-bastion/internal/core"
	"github.com/vovakirdan/tui-bastion/internal/route"
)

var towerTable = map[string]*TowerArchetype{
	"gun": {
		ID:              "gun",
		Name:            "Gun Turret",
		Kind:            AttackDirect,
		Range:           2.8,
		FireRate:        1.6,
		ProjectileSpeed: 9.0,
		Damage:          12,
		Cost:            100,
		FootprintRadius: 0.4,
		Rune:            '^',
		Color:           core.ColorCyan,
	},
	"cannon": {
		ID:              "cannon",
		Name:            "Cannon",
		Kind:            AttackSplash,
		Range:           3.2,
		FireRate:        0.7,
		ProjectileSpeed: 6.0,
		Damage:          20,
		Cost:            200,
		FootprintRadius: 0.45,
		SplashRadius:    1.1,
		Rune:            '@',
		Color:           core.ColorOrange,
	},
	"frost": {
		ID:              "frost",
		Name:            "Frost Spire",
		Kind:            AttackSlow,
		Range:           2.6,
		FireRate:        1.0,
		ProjectileSpeed: 8.0,
		Damage:          5,
		Cost:            150,
		FootprintRadius: 0.4,
		SlowFactor:      0.6,
		SlowDuration:    2.0,
		Rune:            '*',
		Color:           core.ColorBrightCyan,
	},
	"prism": {
		ID:              "prism",
		Name:            "Prism Lance",
		Kind:            AttackBeam,
		Range:           3.0,
		FireRate:        1.0,
		Damage:          18, // damage per second
		Cost:            250,
		FootprintRadius: 0.4,
		Rune:            'Y',
		Color:           core.ColorBrightMagenta,
	},
}

var enemyTable = map[string]*EnemyArchetype{
	"scout": {
		ID:         "scout",
		Name:       "Scout",
		Shape:      ShapeCircle,
		Color:      core.ColorGreen,
		Radius:     0.30,
		MaxHealth:  30,
		Speed:      1.6,
		Reward:     8,
		CoreDamage: 1,
	},
	"grunt": {
		ID:         "grunt",
		Name:       "Grunt",
		Shape:      ShapeSquare,
		Color:      core.ColorYellow,
		Radius:     0.35,
		MaxHealth:  70,
		Speed:      1.0,
		Reward:     12,
		CoreDamage: 1,
	},
	"wisp": {
		ID:         "wisp",
		Name:       "Wisp",
		Shape:      ShapeTriangle,
		Color:      core.ColorMagenta,
		Radius:     0.25,
		MaxHealth:  45,
		Speed:      2.2,
		Reward:     10,
		CoreDamage: 1,
	},
	"brute": {
		ID:         "brute",
		Name:       "Brute",
		Shape:      ShapeDiamond,
		Color:      core.ColorRed,
		Radius:     0.45,
		MaxHealth:  220,
		Speed:      0.55,
		Reward:     30,
		CoreDamage: 2,
	},
}

var mapTable = map[string]*Map{
	"meadow": {
		ID:   "meadow",
		Name: "Meadow",
		Cols: 20,
		Rows: 11,
		Waypoints: []route.Cell{
			{Col: 0, Row: 5}, {Col: 6, Row: 5}, {Col: 6, Row: 2},
			{Col: 13, Row: 2}, {Col: 13, Row: 8}, {Col: 19, Row: 8},
		},
	},
	"canyon": {
		ID:   "canyon",
		Name: "Canyon",
		Cols: 22,
		Rows: 12,
		Waypoints: []route.Cell{
			{Col: 0, Row: 2}, {Col: 15, Row: 2}, {Col: 15, Row: 6},
			{Col: 4, Row: 6}, {Col: 4, Row: 10}, {Col: 21, Row: 10},
		},
		InitialTowers: []Placement{
			{TowerType: "gun", Cell: route.Cell{Col: 8, Row: 4}},
		},
	},
}

var levelTable = map[string]*Level{
	"meadow-1": {
		ID:    "meadow-1",
		Name:  "First Stand",
		MapID: "meadow",
		Waves: []Wave{
			{EnemyType: "scout", Count: 6, SpawnInterval: 0.9, StartDelay: 2.0},
			{EnemyType: "grunt", Count: 6, SpawnInterval: 0.8, StartDelay: 1.0},
			{EnemyType: "scout", Count: 10, SpawnInterval: 0.5, StartDelay: 1.0},
			{EnemyType: "wisp", Count: 8, SpawnInterval: 0.45, StartDelay: 1.0},
			{EnemyType: "grunt", Count: 10, SpawnInterval: 0.7, StartDelay: 1.5},
			{EnemyType: "brute", Count: 3, SpawnInterval: 1.4, StartDelay: 2.0},
		},
	},
	"canyon-1": {
		ID:         "canyon-1",
		Name:       "Long March",
		MapID:      "canyon",
		StartMoney: 260,
		StartLives: 15,
		Waves: []Wave{
			{EnemyType: "scout", Count: 8, SpawnInterval: 0.8, StartDelay: 2.0},
			{EnemyType: "wisp", Count: 6, SpawnInterval: 0.6, StartDelay: 1.0},
			{EnemyType: "grunt", Count: 8, SpawnInterval: 0.75, StartDelay: 1.0},
			{EnemyType: "scout", Count: 14, SpawnInterval: 0.4, StartDelay: 1.0},
			{EnemyType: "brute", Count: 2, SpawnInterval: 2.0, StartDelay: 2.0},
			{EnemyType: "wisp", Count: 12, SpawnInterval: 0.35, StartDelay: 1.0},
			{EnemyType: "grunt", Count: 14, SpawnInterval: 0.55, StartDelay: 1.5},
			{EnemyType: "brute", Count: 6, SpawnInterval: 1.2, StartDelay: 2.5},
		},
	},
}

// Tower looks up a tower archetype by id. Unknown ids are a content bug.
func Tower(id string) *TowerArchetype {
	a, ok := towerTable[id]
	if !ok {
		panic(fmt.Sprintf("content: unknown tower archetype %q", id))
	}
	return a
}

// Enemy looks up an enemy archetype by id. Unknown ids are a content bug.
func Enemy(id string) *EnemyArchetype {
	a, ok := enemyTable[id]
	if !ok {
		panic(fmt.Sprintf("content: unknown enemy archetype %q", id))
	}
	return a
}

// MapByID looks up a map by id. Unknown ids are a content bug.
func MapByID(id string) *Map {
	m, ok := mapTable[id]
	if !ok {
		panic(fmt.Sprintf("content: unknown map %q", id))
	}
	return m
}

// LevelByID looks up a level by id. Unknown ids are a content bug.
func LevelByID(id string) *Level {
	l, ok := levelTable[id]
	if !ok {
		panic(fmt.Sprintf("content: unknown level %q", id))
	}
	return l
}

// BuildOrder returns the tower ids in the order the build palette cycles
// through them (cheapest first).
func BuildOrder() []string {
	return []string{"gun", "frost", "cannon", "prism"}
}

// EnemyIDs returns all enemy archetype ids, sorted.
func EnemyIDs() []string {
	ids := make([]string, 0, len(enemyTable))
	for id := range enemyTable {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// EndlessRotation returns enemy ids ordered weakest to strongest. Endless
// wave synthesis indexes into this list, so the order must be stable.
func EndlessRotation() []string {
	return []string{"scout", "wisp", "grunt", "brute"}
}

// Maps returns all maps, sorted by id.
func Maps() []*Map {
	out := make([]*Map, 0, len(mapTable))
	for _, m := range mapTable {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Levels returns all levels, sorted by id.
func Levels() []*Level {
	out := make([]*Level, 0, len(levelTable))
	for _, l := range levelTable {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LevelsForMap returns the levels scheduled on the given map, sorted by id.
func LevelsForMap(mapID string) []*Level {
	var out []*Level
	for _, l := range Levels() {
		if l.MapID == mapID {
			out = append(out, l)
		}
	}
	return out
}
