package snake

import (
	"errors"
	"fmt"
)

// MinArenaSize is the smallest width and height that leaves an interior cell.
const MinArenaSize = 3

// ErrArenaTooSmall is returned by New when the arena has no interior cell.
var ErrArenaTooSmall = errors.New("snake: arena too small")

// Arena is the play area including its one-cell border.
// The playable interior is 1..Width-2 by 1..Height-2.
type Arena struct {
	Width  int
	Height int
}

// Validate reports ErrArenaTooSmall when either side is below MinArenaSize.
func (a Arena) Validate() error {
	if a.Width < MinArenaSize || a.Height < MinArenaSize {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrArenaTooSmall, a.Width, a.Height, MinArenaSize, MinArenaSize)
	}
	return nil
}

// OnBorder reports whether c lies on the outer frame (or outside it).
func (a Arena) OnBorder(c Coord) bool {
	return c.X <= 0 || c.Y <= 0 || c.X >= a.Width-1 || c.Y >= a.Height-1
}

// Interior returns the number of playable cells.
func (a Arena) Interior() int {
	if a.Width < MinArenaSize || a.Height < MinArenaSize {
		return 0
	}
	return (a.Width - 2) * (a.Height - 2)
}

// Center returns the interior cell a new snake starts on.
func (a Arena) Center() Coord {
	return Coord{
		X: (a.Width-2)/2 + 1,
		Y: (a.Height-2)/2 + 1,
	}
}
