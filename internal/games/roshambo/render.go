package roshambo

import (
	"github.com/vovakirdan/epic-rps/internal/core"
	"github.com/vovakirdan/epic-rps/internal/multiplayer"
	"github.com/vovakirdan/epic-rps/internal/rps"
)

// Hand art for the terminal frontend. Each block is drawn with spaces
// transparent.
var (
	rockArt = []string{
		"    _______",
		"---'   ____)",
		"      (_____)",
		"      (_____)",
		"      (____)",
		"---.__(___)",
	}
	paperArt = []string{
		"     _______",
		"---'    ____)____",
		"           ______)",
		"          _______)",
		"         _______)",
		"---.__________)",
	}
	scissorsArt = []string{
		"    _______",
		"---'   ____)____",
		"          ______)",
		"       __________)",
		"      (____)",
		"---.__(___)",
	}
	hiddenArt = []string{
		" ┌───────┐",
		" │ ? ? ? │",
		" │       │",
		" │ ready │",
		" │ ? ? ? │",
		" └───────┘",
	}
)

const artHeight = 6

// artFor returns the block for a move, or nil for None.
func artFor(c rps.Choice) []string {
	switch c {
	case rps.Rock:
		return rockArt
	case rps.Paper:
		return paperArt
	case rps.Scissors:
		return scissorsArt
	default:
		return nil
	}
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()

	dst.DrawText(2, 1, Welcome)
	dst.DrawTextColored(2, 2, g.scoreLine(), core.ColorGray)

	leftX := max(2, w/8)
	rightX := max(leftX+20, w*5/8)
	artY := core.Clamp(h/2-artHeight/2, 5, max(5, h-artHeight-5))

	dst.DrawTextColored(leftX, artY-2, g.leftName(), core.ColorCyan)
	dst.DrawTextColored(rightX, artY-2, g.rightName(), core.ColorYellow)

	// Player 1's move stays hidden in hot-seat play until both are in
	if g.mode == multiplayer.MatchModeHotSeat && g.round.Phase() == rps.AwaitingPlayer2 {
		dst.DrawLines(leftX, artY, hiddenArt, core.ColorGray)
	} else {
		dst.DrawLines(leftX, artY, artFor(g.round.First()), core.ColorCyan)
	}
	dst.DrawLines(rightX, artY, artFor(g.round.Second()), core.ColorYellow)

	statusY := min(h-3, artY+artHeight+2)
	if status := g.statusLine(); status != "" {
		dst.DrawTextCentered(statusY, status, g.statusColor())
	}
	dst.DrawTextCentered(statusY+1, g.hintLine(), core.ColorWhite)
}

// statusColor picks green when Player 1 won, red when Player 2 won.
func (g *Game) statusColor() core.Color {
	switch g.round.Outcome() {
	case rps.FirstWins:
		return core.ColorGreen
	case rps.SecondWins:
		return core.ColorRed
	default:
		return core.ColorBrightWhite
	}
}
