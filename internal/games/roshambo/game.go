// Package roshambo implements the rock-paper-scissors game modes:
// "classic" (you against a random CPU) and "versus" (two players taking
// turns on one keyboard).
package roshambo

import (
	"time"

	"github.com/vovakirdan/epic-rps/internal/core"
	"github.com/vovakirdan/epic-rps/internal/multiplayer"
	"github.com/vovakirdan/epic-rps/internal/registry"
	"github.com/vovakirdan/epic-rps/internal/rps"
)

// Welcome is the instruction banner shown above the play field.
const Welcome = "Use your keyboard: 1 - rock,  2 - paper, 3 - scissors."

// Mode IDs as registered with the platform.
const (
	ClassicID = "classic"
	VersusID  = "versus"
)

// Game implements both modes; mode decides who makes the second move.
type Game struct {
	id    string
	title string
	mode  multiplayer.MatchMode

	round    rps.Round
	tally    rps.Tally
	opponent rps.Opponent
	config   core.RuntimeConfig

	// fixedOpponent survives Reset so scripted opponents stay in place.
	fixedOpponent bool
	now           func() time.Time
	tickCount     int
}

// NewClassic creates a player-vs-CPU game.
func NewClassic() *Game {
	return &Game{
		id:    ClassicID,
		title: "Classic (vs CPU)",
		mode:  multiplayer.MatchModeVsCPU,
		now:   time.Now,
	}
}

// NewVersus creates a two-player hot-seat game.
func NewVersus() *Game {
	return &Game{
		id:    VersusID,
		title: "Versus (hot seat)",
		mode:  multiplayer.MatchModeHotSeat,
		now:   time.Now,
	}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.title
}

// Mode reports who Player 2 is.
func (g *Game) Mode() multiplayer.MatchMode {
	return g.mode
}

// SetOpponent replaces the CPU opponent. It has no effect in versus mode.
func (g *Game) SetOpponent(o rps.Opponent) {
	g.opponent = o
	g.fixedOpponent = o != nil
}

// Reset starts a fresh session: new round, empty tally.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.round.Reset()
	g.tally.Reset()
	g.tickCount = 0

	if g.mode == multiplayer.MatchModeVsCPU && !g.fixedOpponent {
		g.opponent = rps.NewRandomOpponent(cfg.Seed)
	}
}

// Step consumes one tick of input.
//
// Move keys are applied in press order. Once a round is resolved further
// moves are ignored until Restart begins the next round.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tickCount++
	resolved := false

	for _, a := range in.Ordered() {
		if a == core.ActionRestart {
			if g.round.Done() {
				g.round.Reset()
			}
			continue
		}

		c := rps.FromAction(a)
		if !c.Valid() || g.round.Done() {
			continue
		}
		if g.play(c) {
			resolved = true
		}
	}

	return core.StepResult{State: g.State(), RoundResolved: resolved}
}

// play feeds one move into the round and reports whether it resolved it.
func (g *Game) play(c rps.Choice) bool {
	if err := g.round.Choose(c); err != nil {
		return false
	}

	if g.mode == multiplayer.MatchModeVsCPU && g.round.Phase() == rps.AwaitingPlayer2 {
		if g.opponent == nil {
			g.opponent = rps.NewRandomOpponent(g.config.Seed)
		}
		if err := g.round.Choose(g.opponent.Pick()); err != nil {
			return false
		}
	}

	if !g.round.Done() {
		return false
	}
	g.tally.Add(g.round.First(), g.round.Second(), g.now())
	return true
}

// Round returns the current round.
func (g *Game) Round() rps.Round {
	return g.round
}

// Tally returns the session statistics.
func (g *Game) Tally() rps.Tally {
	return g.tally
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.tally.FirstWins,
		Rounds:   g.tally.Rounds(),
		Resolved: g.round.Done(),
	}
}

func init() {
	registry.Register(ClassicID, func() registry.Game {
		return NewClassic()
	})
	registry.Register(VersusID, func() registry.Game {
		return NewVersus()
	})
}
