package core

// RuntimeConfig is what the platform tells a game when a session starts.
type RuntimeConfig struct {
	ScreenW  int // cells for the terminal, pixels for the window
	ScreenH  int
	TickRate int   // Step calls per second
	Seed     int64 // CPU opponent seed; 0 lets the platform pick one
}

// DefaultConfig is an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState summarizes a session for the platform.
type GameState struct {
	Score    int  // rounds won by Player 1
	Rounds   int  // rounds resolved so far
	Resolved bool // the current round has an outcome
}

// StepResult is what a single Step produced.
type StepResult struct {
	State GameState

	// RoundResolved is set only on the tick that produced an outcome.
	RoundResolved bool
}
