package rps

// Outcome is the result of comparing two choices.
//
// In player-vs-CPU play FirstWins means the human won; in hot-seat play it
// means Player 1 won. Winner gives the winning move for either reading.
type Outcome int

const (
	Undecided Outcome = iota
	FirstWins
	SecondWins
	Tie
)

// String returns a short label for the outcome.
func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first wins"
	case SecondWins:
		return "second wins"
	case Tie:
		return "tie"
	default:
		return "undecided"
	}
}

// outcomes is indexed [first-1][second-1], rows and columns in
// Rock, Paper, Scissors order.
var outcomes = [3][3]Outcome{
	{Tie, SecondWins, FirstWins},
	{FirstWins, Tie, SecondWins},
	{SecondWins, FirstWins, Tie},
}

// Resolve compares two moves. Rock beats scissors, scissors beats paper,
// paper beats rock, equal moves tie. If either move is not playable the
// result is Undecided.
func Resolve(first, second Choice) Outcome {
	if !first.Valid() || !second.Valid() {
		return Undecided
	}
	return outcomes[first-1][second-1]
}

// Winner returns the winning move, or None for a tie or an undecided pair.
func Winner(first, second Choice) Choice {
	switch Resolve(first, second) {
	case FirstWins:
		return first
	case SecondWins:
		return second
	default:
		return None
	}
}
