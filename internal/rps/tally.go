package rps

import "time"

// Record is one resolved round kept in the session history.
type Record struct {
	Number  int
	First   Choice
	Second  Choice
	Outcome Outcome
	At      time.Time
}

// Tally keeps in-memory session statistics. Nothing is persisted.
type Tally struct {
	FirstWins  int
	SecondWins int
	Ties       int
	History    []Record
}

// Add records a resolved round. Undecided rounds are ignored.
func (t *Tally) Add(first, second Choice, at time.Time) Record {
	o := Resolve(first, second)
	switch o {
	case FirstWins:
		t.FirstWins++
	case SecondWins:
		t.SecondWins++
	case Tie:
		t.Ties++
	default:
		return Record{}
	}

	rec := Record{
		Number:  len(t.History) + 1,
		First:   first,
		Second:  second,
		Outcome: o,
		At:      at,
	}
	t.History = append(t.History, rec)
	return rec
}

// Rounds returns the number of resolved rounds.
func (t Tally) Rounds() int {
	return len(t.History)
}

// Reset clears all statistics.
func (t *Tally) Reset() {
	*t = Tally{}
}
