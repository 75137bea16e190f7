// Package snake implements the single-player snake engine: the grid model, the
// per-tick transition and the Running/GameOver state machine.
// It has no dependencies outside the standard library; the platform layer owns
// timing, input and drawing.
package snake

// Coord is a grid cell index. X grows to the right, Y grows downwards.
type Coord struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d.
func (c Coord) Step(d Direction) Coord {
	switch d {
	case Up:
		c.Y--
	case Down:
		c.Y++
	case Left:
		c.X--
	case Right:
		c.X++
	}
	return c
}

// Direction is the heading applied on the next movement step.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

func containsCoord(cells []Coord, c Coord) bool {
	for _, cell := range cells {
		if cell == c {
			return true
		}
	}
	return false
}
