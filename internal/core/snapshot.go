package core

// Snapshot is what a graphical frontend needs to draw one frame.
// Sprite names are asset keys ("rock", "paper", "scissors"); an empty
// name means nothing is drawn in that slot.
type Snapshot struct {
	Left   string // Sprite for Player 1
	Right  string // Sprite for Player 2
	Status string // One-line round status, empty while waiting
	Hint   string // Short prompt for the next expected input
}
