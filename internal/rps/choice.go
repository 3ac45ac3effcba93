// Package rps holds the rules of rock-paper-scissors: moves, the outcome
// table and the per-round state machine. It has no frontend dependencies.
package rps

import "github.com/vovakirdan/epic-rps/internal/core"

// Choice is one participant's move.
type Choice int

const (
	None Choice = iota
	Rock
	Paper
	Scissors
)

// Choices lists the playable moves in key order (1, 2, 3).
var Choices = [...]Choice{Rock, Paper, Scissors}

// Valid reports whether c is a playable move.
func (c Choice) Valid() bool {
	return c >= Rock && c <= Scissors
}

// String returns the display name of the move.
func (c Choice) String() string {
	switch c {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "None"
	}
}

// Sprite returns the asset key for the move, or "" for None.
func (c Choice) Sprite() string {
	switch c {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return ""
	}
}

// FromAction maps a move action to a Choice. Any other action maps to None.
func FromAction(a core.Action) Choice {
	switch a {
	case core.ActionRock:
		return Rock
	case core.ActionPaper:
		return Paper
	case core.ActionScissors:
		return Scissors
	default:
		return None
	}
}
