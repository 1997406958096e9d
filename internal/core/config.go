package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size their playfield and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Fixed duration of one simulation tick
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      30,
		ScreenH:      21,
		TickInterval: 50 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// Phase is the coarse lifecycle state of a game session.
type Phase int

const (
	PhaseLoading Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int   // Current score
	Phase Phase // Loading, playing or game over
}

// GameOver reports whether the session reached its terminal phase.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
