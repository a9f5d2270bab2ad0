package core

// Surface identifies the kind of canvas a game is rendered onto.
// Games use it to pick layout units (terminal cells vs window pixels).
type Surface int

const (
	SurfaceTerminal Surface = iota
	SurfaceWindow
)

// String returns the surface name used in logs and flags.
func (s Surface) String() string {
	switch s {
	case SurfaceTerminal:
		return "terminal"
	case SurfaceWindow:
		return "window"
	default:
		return "unknown"
	}
}

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in layout units (cells or pixels)
	ScreenH  int     // Screen height in layout units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
	Surface  Surface // Canvas kind the game renders onto
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Surface:  SurfaceTerminal,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current (or last finished) score
	Playing  bool // Whether a round is in progress
	GameOver bool // Whether the round has ended and waits for acknowledgement
	Paused   bool // Whether the game is paused
	Exit     bool // Whether the player asked to leave the game
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState

	// RoundStarted and RoundEnded are set on the tick the transition happened,
	// so the platform can log or record results exactly once.
	RoundStarted bool
	RoundEnded   bool
}
