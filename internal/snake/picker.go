package snake

import "math/rand"

// CellPicker chooses a candidate interior cell for food.
// Implementations must only return cells with 1 <= X <= Width-2 and
// 1 <= Y <= Height-2; the engine rejects border and occupied cells and asks
// again.
type CellPicker interface {
	PickCell(a Arena) Coord
}

// RandomPicker draws each axis independently and uniformly from the interior.
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker creates a picker with a fixed seed, so the same seed and the
// same inputs replay the same game.
func NewRandomPicker(seed int64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

// PickCell implements CellPicker.
func (p *RandomPicker) PickCell(a Arena) Coord {
	return Coord{
		X: p.rng.Intn(a.Width-2) + 1,
		Y: p.rng.Intn(a.Height-2) + 1,
	}
}

// PickerFunc adapts a plain function to CellPicker.
type PickerFunc func(a Arena) Coord

// PickCell implements CellPicker.
func (f PickerFunc) PickCell(a Arena) Coord {
	return f(a)
}
