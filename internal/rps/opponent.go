package rps

import "math/rand"

// Opponent picks the CPU's move.
type Opponent interface {
	Pick() Choice
}

// RandomOpponent draws uniformly from Rock, Paper and Scissors.
type RandomOpponent struct {
	rng *rand.Rand
}

// NewRandomOpponent creates an opponent with a deterministic RNG.
func NewRandomOpponent(seed int64) *RandomOpponent {
	return &RandomOpponent{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns the next move.
func (o *RandomOpponent) Pick() Choice {
	return Choices[o.rng.Intn(len(Choices))]
}

// FixedOpponent replays a fixed sequence of moves, wrapping around.
// Useful for scripted play and tests.
type FixedOpponent struct {
	moves []Choice
	next  int
}

// NewFixedOpponent creates an opponent that plays moves in order.
func NewFixedOpponent(moves ...Choice) *FixedOpponent {
	return &FixedOpponent{moves: moves}
}

// Pick returns the next move in the sequence, or Rock if the sequence is empty.
func (o *FixedOpponent) Pick() Choice {
	if len(o.moves) == 0 {
		return Rock
	}
	c := o.moves[o.next%len(o.moves)]
	o.next++
	return c
}
