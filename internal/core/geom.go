// Package core holds the types shared by games and frontends: actions,
// the character screen, colors and runtime settings. Nothing here imports
// a frontend library, so games stay testable without a terminal or window.
package core

import "cmp"

// Point is a position on a frontend surface, in pixels or cells.
type Point struct {
	X, Y int
}

// Clamp limits v to [lo, hi]. When hi < lo, lo wins.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
