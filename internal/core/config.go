package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for timing and deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Output width (terminal columns or window pixels)
	ScreenH  int   // Output height (terminal rows or window pixels)
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

// EndCause tells why a run ended.
type EndCause string

const (
	CauseNone        EndCause = ""
	CauseNoLives     EndCause = "no lives"
	CauseTimeExpired EndCause = "time expired"
	CauseWon         EndCause = "won"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int      // Current score
	Lives    int      // Remaining lives
	Level    int      // Current level (1-indexed)
	GameOver bool     // Whether the run has ended
	Cause    EndCause // Why the run ended (empty while running)
	Paused   bool     // Whether the game is paused
	Quit     bool     // Whether the player asked to leave (quit button)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
