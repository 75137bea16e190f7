package tui

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/snek/internal/config"
	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/snake"
)

const crashGlyph = 'X'

// drawSession draws the play field: frame with title and score, food, body, head.
// Arena cell (x, y) maps to screen cell (area.X+x, area.Y+y).
func drawSession(dst *core.Screen, area core.Rect, snap snake.Snapshot, theme config.Theme) {
	dst.DrawFrame(area, theme.Title, theme.Border)
	dst.DrawText(area.X+1, area.Y, fmt.Sprintf("Score: %d", snap.Score), theme.Border)

	put := func(c snake.Coord, cell core.Cell) {
		if area.Contains(area.X+c.X, area.Y+c.Y) {
			dst.SetCell(area.X+c.X, area.Y+c.Y, cell.Rune, cell.Color)
		}
	}

	for _, f := range snap.Food {
		put(f, theme.Food)
	}
	for _, seg := range snap.Body {
		put(seg, theme.Body)
	}
	put(snap.Head, theme.Head)

	if snap.State == snake.GameOver && snap.Cause != snake.CauseArenaFull {
		put(snap.Crash, core.Cell{Rune: crashGlyph, Color: core.ColorBrightRed})
	}
}

// drawPrompt draws a centered box with the given lines, filled with the
// theme's prompt cell.
func drawPrompt(dst *core.Screen, area core.Rect, lines []string, theme config.Theme) {
	width := runewidth.StringWidth(theme.Title)
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}

	box := area.Centered(
		core.Clamp(width+6, 2, area.W),
		core.Clamp(len(lines)+2, 2, area.H),
	)
	dst.FillRect(box, theme.Prompt.Rune, theme.Prompt.Color)
	dst.DrawFrame(box, theme.Title, theme.Border)
	for i, line := range lines {
		dst.DrawTextCentered(box, box.Y+1+i, line, theme.Prompt.Color)
	}
}

// promptLines returns the start/restart prompt for the current shell state.
func promptLines(snap *snake.Snapshot, tooSmall bool) []string {
	var lines []string
	switch {
	case tooSmall:
		lines = append(lines, "", "Window too small to play", "Resize the terminal")
	case snap != nil && snap.State == snake.GameOver:
		lines = append(lines, "",
			fmt.Sprintf("Game over: %s", snap.Cause),
			fmt.Sprintf("Score: %d", snap.Score),
		)
	}
	return append(lines,
		"",
		"Press SPACE to start the game",
		"",
		"Use arrow keys to move",
		"Press 'q' to quit",
		"",
	)
}
