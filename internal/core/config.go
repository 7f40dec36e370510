package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and tick timing.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState communicates game status to the platform.
// Returned by Game.State() after each step.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the match has ended (won or lost)
	Won      bool // Whether the player won (valid when GameOver)
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
