package rps

import "testing"

func TestResolveTable(t *testing.T) {
	tests := []struct {
		first, second Choice
		expected      Outcome
		winner        Choice
	}{
		{Rock, Rock, Tie, None},
		{Paper, Paper, Tie, None},
		{Scissors, Scissors, Tie, None},
		{Rock, Scissors, FirstWins, Rock},
		{Scissors, Paper, FirstWins, Scissors},
		{Paper, Rock, FirstWins, Paper},
		{Scissors, Rock, SecondWins, Rock},
		{Paper, Scissors, SecondWins, Scissors},
		{Rock, Paper, SecondWins, Paper},
	}

	for _, tc := range tests {
		t.Run(tc.first.String()+"_vs_"+tc.second.String(), func(t *testing.T) {
			if got := Resolve(tc.first, tc.second); got != tc.expected {
				t.Errorf("Resolve(%v, %v) = %v, expected %v", tc.first, tc.second, got, tc.expected)
			}
			if got := Winner(tc.first, tc.second); got != tc.winner {
				t.Errorf("Winner(%v, %v) = %v, expected %v", tc.first, tc.second, got, tc.winner)
			}
		})
	}
}

func TestResolveAntiSymmetric(t *testing.T) {
	for _, a := range Choices {
		for _, b := range Choices {
			ab := Resolve(a, b)
			ba := Resolve(b, a)

			if a == b {
				if ab != Tie {
					t.Errorf("Resolve(%v, %v) = %v, expected tie", a, b, ab)
				}
				continue
			}

			switch ab {
			case FirstWins:
				if ba != SecondWins {
					t.Errorf("Resolve(%v, %v) = %v but Resolve(%v, %v) = %v", a, b, ab, b, a, ba)
				}
			case SecondWins:
				if ba != FirstWins {
					t.Errorf("Resolve(%v, %v) = %v but Resolve(%v, %v) = %v", a, b, ab, b, a, ba)
				}
			default:
				t.Errorf("Resolve(%v, %v) = %v, expected a winner", a, b, ab)
			}

			// Same winning move from either side
			if Winner(a, b) != Winner(b, a) {
				t.Errorf("Winner(%v, %v) != Winner(%v, %v)", a, b, b, a)
			}
		}
	}
}

func TestResolveUnsetChoices(t *testing.T) {
	tests := []struct {
		first, second Choice
	}{
		{None, Rock},
		{Paper, None},
		{None, None},
		{Choice(7), Rock},
		{Rock, Choice(-1)},
	}

	for _, tc := range tests {
		if got := Resolve(tc.first, tc.second); got != Undecided {
			t.Errorf("Resolve(%d, %d) = %v, expected undecided", tc.first, tc.second, got)
		}
		if got := Winner(tc.first, tc.second); got != None {
			t.Errorf("Winner(%d, %d) = %v, expected None", tc.first, tc.second, got)
		}
	}
}
