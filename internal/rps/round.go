package rps

import (
	"errors"
	"fmt"
)

var (
	// ErrRoundOver is returned by Choose once both moves are in.
	ErrRoundOver = errors.New("rps: round already resolved")

	// ErrInvalidChoice is returned by Choose for None or out-of-range moves.
	ErrInvalidChoice = errors.New("rps: invalid choice")
)

// Phase is where a round is in its input sequence.
type Phase int

const (
	AwaitingPlayer1 Phase = iota
	AwaitingPlayer2
	Resolved
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case AwaitingPlayer1:
		return "awaiting player 1"
	case AwaitingPlayer2:
		return "awaiting player 2"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Round collects one move from each participant and resolves them.
// The zero value is a fresh round awaiting Player 1.
type Round struct {
	phase   Phase
	first   Choice
	second  Choice
	outcome Outcome
}

// Choose records the next move. The first call sets Player 1's move, the
// second sets Player 2's move and resolves the round.
func (r *Round) Choose(c Choice) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidChoice, int(c))
	}

	switch r.phase {
	case AwaitingPlayer1:
		r.first = c
		r.phase = AwaitingPlayer2
	case AwaitingPlayer2:
		r.second = c
		r.outcome = Resolve(r.first, r.second)
		r.phase = Resolved
	default:
		return ErrRoundOver
	}
	return nil
}

// Reset starts a new round.
func (r *Round) Reset() {
	*r = Round{}
}

// Phase returns the current phase.
func (r Round) Phase() Phase {
	return r.phase
}

// First returns Player 1's move, or None if not chosen yet.
func (r Round) First() Choice {
	return r.first
}

// Second returns Player 2's move, or None if not chosen yet.
func (r Round) Second() Choice {
	return r.second
}

// Outcome returns the result, Undecided until the round is resolved.
func (r Round) Outcome() Outcome {
	return r.outcome
}

// Done reports whether both moves are in.
func (r Round) Done() bool {
	return r.phase == Resolved
}
