// Package multiplayer describes who is playing a match: one human against
// the CPU, or two humans sharing a keyboard.
package multiplayer

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/epic-rps/internal/core"
)

// PlayerID is an alias to core.PlayerID for convenience.
type PlayerID = core.PlayerID

// Re-export player constants for convenience.
const (
	Player1 = core.Player1
	Player2 = core.Player2
)

// MatchID uniquely identifies a match for the lifetime of the process.
// It only tags log lines; matches are never stored.
type MatchID string

// MatchMode defines how a match is configured.
type MatchMode int

const (
	// MatchModeVsCPU is a human against a uniformly random CPU opponent.
	MatchModeVsCPU MatchMode = iota

	// MatchModeHotSeat is two humans taking turns on one keyboard.
	MatchModeHotSeat
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeVsCPU:
		return "vs CPU"
	case MatchModeHotSeat:
		return "Hot seat"
	default:
		return "Unknown"
	}
}

// Opponent returns the display name of Player 2 for this mode.
func (m MatchMode) Opponent() string {
	if m == MatchModeVsCPU {
		return "CPU"
	}
	return Player2.String()
}

// Match identifies one play session of a game.
type Match struct {
	id     MatchID
	mode   MatchMode
	gameID string
}

// NewMatch creates a match with a fresh random ID.
func NewMatch(gameID string, mode MatchMode) *Match {
	return &Match{
		id:     MatchID(uuid.NewString()),
		mode:   mode,
		gameID: gameID,
	}
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// Mode returns the match mode.
func (m *Match) Mode() MatchMode {
	return m.mode
}

// GameID returns the registry ID of the game being played.
func (m *Match) GameID() string {
	return m.gameID
}
