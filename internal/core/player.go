package core

// PlayerID identifies a participant in a round.
// Player1 is always the local human; Player2 is the CPU or the second
// human sharing the keyboard.
type PlayerID int

const (
	Player1 PlayerID = iota + 1
	Player2
)

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Unknown"
	}
}
