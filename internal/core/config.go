package core

// RuntimeConfig contains configuration passed to games when a round is set up.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second override; 0 keeps the game's own cadence
	Seed     int64 // RNG seed for deterministic gameplay
	Preset   string
	// ConfigPath overrides the game's YAML file; empty uses the search path.
	ConfigPath string
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
		Preset:  "normal",
	}
}

// Phase names shared by the engine and the platform.
const (
	PhaseIdle     = "idle"
	PhasePlaying  = "playing"
	PhaseWon      = "won"
	PhaseGameOver = "game-over"
)

// GameState is the platform's cheap view of a running game.
type GameState struct {
	Score int
	Phase string
}

// Over reports whether the round reached a terminal phase.
func (s GameState) Over() bool {
	return s.Phase == PhaseWon || s.Phase == PhaseGameOver
}

// Playing reports whether the round is in progress.
func (s GameState) Playing() bool {
	return s.Phase == PhasePlaying
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
