package roshambo

import (
	"fmt"

	"github.com/vovakirdan/epic-rps/internal/core"
	"github.com/vovakirdan/epic-rps/internal/multiplayer"
	"github.com/vovakirdan/epic-rps/internal/rps"
)

// Snapshot describes the current state for graphical frontends.
// In versus mode Player 1's move stays hidden until Player 2 has chosen.
func (g *Game) Snapshot() core.Snapshot {
	snap := core.Snapshot{
		Status: g.statusLine(),
		Hint:   g.hintLine(),
	}

	if g.round.Done() || g.mode == multiplayer.MatchModeVsCPU {
		snap.Left = g.round.First().Sprite()
		snap.Right = g.round.Second().Sprite()
	}
	return snap
}

// leftName and rightName label the two sides.
func (g *Game) leftName() string {
	if g.mode == multiplayer.MatchModeVsCPU {
		return "You"
	}
	return multiplayer.Player1.String()
}

func (g *Game) rightName() string {
	return g.mode.Opponent()
}

// statusLine describes the resolved round, or "" while waiting.
func (g *Game) statusLine() string {
	if !g.round.Done() {
		return ""
	}

	first, second := g.round.First(), g.round.Second()
	switch g.round.Outcome() {
	case rps.FirstWins:
		if g.mode == multiplayer.MatchModeVsCPU {
			return fmt.Sprintf("You win! %s beats %s.", first, second)
		}
		return fmt.Sprintf("%s wins! %s beats %s.", g.leftName(), first, second)
	case rps.SecondWins:
		return fmt.Sprintf("%s wins! %s beats %s.", g.rightName(), second, first)
	case rps.Tie:
		return fmt.Sprintf("Tie! Both chose %s.", first)
	default:
		return ""
	}
}

// hintLine tells whoever is up what to press.
func (g *Game) hintLine() string {
	switch g.round.Phase() {
	case rps.AwaitingPlayer1:
		if g.mode == multiplayer.MatchModeVsCPU {
			return "Press 1, 2 or 3 to play."
		}
		return "Player 1: press 1, 2 or 3."
	case rps.AwaitingPlayer2:
		return "Player 1 has chosen. Player 2: press 1, 2 or 3."
	default:
		return "Press R for another round."
	}
}

// scoreLine summarizes the session tally.
func (g *Game) scoreLine() string {
	return fmt.Sprintf("%s %d  %s %d  Ties %d",
		g.leftName(), g.tally.FirstWins, g.rightName(), g.tally.SecondWins, g.tally.Ties)
}
