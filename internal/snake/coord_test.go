package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordStep(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Coord
	}{
		{Up, Coord{X: 5, Y: 4}},
		{Down, Coord{X: 5, Y: 6}},
		{Left, Coord{X: 4, Y: 5}},
		{Right, Coord{X: 6, Y: 5}},
		{Direction(9), Coord{X: 5, Y: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, Coord{X: 5, Y: 5}.Step(tc.dir))
		})
	}
}

func TestArenaBorder(t *testing.T) {
	a := Arena{Width: 10, Height: 8}

	assert.True(t, a.OnBorder(Coord{X: 0, Y: 3}))
	assert.True(t, a.OnBorder(Coord{X: 3, Y: 0}))
	assert.True(t, a.OnBorder(Coord{X: 9, Y: 3}))
	assert.True(t, a.OnBorder(Coord{X: 3, Y: 7}))
	assert.False(t, a.OnBorder(Coord{X: 1, Y: 1}))
	assert.False(t, a.OnBorder(Coord{X: 8, Y: 6}))
	assert.Equal(t, 48, a.Interior())
	assert.Zero(t, Arena{Width: 2, Height: 9}.Interior())
}

func TestRandomPickerStaysInside(t *testing.T) {
	a := Arena{Width: 5, Height: 4}
	p := NewRandomPicker(1)
	seen := make(map[Coord]bool)

	for range 1000 {
		c := p.PickCell(a)
		assert.False(t, a.OnBorder(c), "picked border cell %v", c)
		seen[c] = true
	}
	assert.Len(t, seen, a.Interior(), "every interior cell should come up")
}

func TestStateAndCauseStrings(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "game_over", GameOver.String())
	assert.Equal(t, "wall collision", CauseWallCollision.String())
	assert.Equal(t, "self collision", CauseSelfCollision.String())
	assert.Equal(t, "arena full", CauseArenaFull.String())
}
