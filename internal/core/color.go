package core

// Color is a cell's foreground color. Frontends map it to whatever their
// output supports; the terminal uses ANSI codes.
type Color uint8

const (
	ColorDefault     Color = iota // terminal foreground
	ColorRed                      // Player 2 won
	ColorGreen                    // Player 1 won
	ColorYellow                   // right-hand side
	ColorCyan                     // left-hand side
	ColorWhite                    // hints
	ColorBrightWhite              // ties
	ColorGray                     // scores, hidden moves
)
