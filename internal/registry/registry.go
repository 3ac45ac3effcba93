// Package registry lets game modes announce themselves from init() so the
// CLI and frontends can list and start them by ID.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/epic-rps/internal/core"
	"github.com/vovakirdan/epic-rps/internal/multiplayer"
)

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is one playable mode. It holds pure logic; frontends own input
// mapping, timing and drawing.
type Game interface {
	ID() string
	Title() string

	// Mode reports who Player 2 is.
	Mode() multiplayer.MatchMode

	// Reset starts a fresh session.
	Reset(cfg core.RuntimeConfig)

	// Step applies one tick of input.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a character screen for the terminal. The screen
	// has been cleared.
	Render(dst *core.Screen)

	// Snapshot describes what the window should draw.
	Snapshot() core.Snapshot

	State() core.GameState
}

// GameInfo describes a registered mode without creating it.
type GameInfo struct {
	ID    string
	Title string
	Mode  multiplayer.MatchMode
}

// Factory returns a fresh game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a mode. It panics if id is taken, which can only happen
// through a programming error in some init().
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	sample := f()
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: sample.Title(), Mode: sample.Mode()},
		factory: f,
	}
}

// List returns every registered mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create returns a new instance of mode id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
