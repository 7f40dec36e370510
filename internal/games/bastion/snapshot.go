package bastion

import "github.com/vovakirdan/tui-bastion/internal/sim"

// Snapshot captures the observable game state for determinism testing and
// replay verification.
type Snapshot struct {
	Tick         uint64
	Mode         string
	Status       sim.Status
	Money        int
	Lives        int
	WaveIndex    int
	Enemies      int
	Towers       int
	Projectiles  int
	Score        int
	Kills        int
	WavesCleared int
	CursorCol    int
	CursorRow    int
	SimTime      float64
}

// MatchSummary describes a finished (or abandoned) run for persistence.
type MatchSummary struct {
	GameID       string
	MapID        string
	LevelID      string // empty for endless runs
	Result       string // "won", "lost", "abandoned"
	WavesCleared int
	Score        int
	Duration     int // whole seconds of simulated time
}

// MatchSummary returns the persistable summary of the current run.
func (g *Game) MatchSummary() MatchSummary {
	result := "abandoned"
	switch g.state.Status {
	case sim.StatusWon:
		result = "won"
	case sim.StatusLost:
		result = "lost"
	}

	levelID := ""
	if g.mode == ModeClassic {
		levelID = selectedLevel
	}

	return MatchSummary{
		GameID:       g.ID(),
		MapID:        g.state.Map().ID,
		LevelID:      levelID,
		Result:       result,
		WavesCleared: g.wavesCleared,
		Score:        g.score,
		Duration:     int(g.state.Time),
	}
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Status:       g.state.Status,
		Money:        g.state.Money,
		Lives:        g.state.Lives,
		WaveIndex:    g.state.WaveIndex,
		Enemies:      len(g.state.Enemies),
		Towers:       len(g.state.Towers),
		Projectiles:  len(g.state.Projectiles),
		Score:        g.score,
		Kills:        g.kills,
		WavesCleared: g.wavesCleared,
		CursorCol:    g.cursor.Col,
		CursorRow:    g.cursor.Row,
		SimTime:      g.state.Time,
	}
}
