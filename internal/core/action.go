package core

import "slices"

// Action is what a key press means to a game. Frontends translate their
// own key events; games only ever see actions.
type Action int

const (
	ActionNone Action = iota
	ActionRock
	ActionPaper
	ActionScissors
	ActionUp      // menu navigation
	ActionDown    // menu navigation
	ActionConfirm // menu selection
	ActionBack
	ActionRestart // next round
	ActionHistory // toggle the round history
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:     "None",
	ActionRock:     "Rock",
	ActionPaper:    "Paper",
	ActionScissors: "Scissors",
	ActionUp:       "Up",
	ActionDown:     "Down",
	ActionConfirm:  "Confirm",
	ActionBack:     "Back",
	ActionRestart:  "Restart",
	ActionHistory:  "History",
	ActionQuit:     "Quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one tick, kept in
// first-press order so two moves in one tick are applied as pressed.
// The zero value is an empty frame.
type InputFrame struct {
	pressed []Action
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a. Repeats within a tick are ignored.
func (f *InputFrame) Set(a Action) {
	if !f.Has(a) {
		f.pressed = append(f.pressed, a)
	}
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return slices.Contains(f.pressed, a)
}

// Ordered returns the triggered actions in press order. Callers must not
// modify the result.
func (f InputFrame) Ordered() []Action {
	return f.pressed
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.pressed = f.pressed[:0]
}
