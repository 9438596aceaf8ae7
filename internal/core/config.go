package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Timestep returns the fixed simulation step in seconds.
func (c RuntimeConfig) Timestep() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the platform-facing summary of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Screen   string // Name of the active screen (start, gameplay, ...)
	Phase    string // Name of the current difficulty phase
	GameOver bool   // A run has finished (defeat or final victory)
	Won      bool   // The finished run was a victory
	Paused   bool   // Whether the game is paused
	Muted    bool   // Whether audio is muted
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
