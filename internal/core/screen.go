package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one character position on the screen.
// A Rune of 0 marks the trailing half of a wide glyph and renders as nothing.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// Frame border glyphs (rounded corners).
const (
	frameTopLeft     = '╭'
	frameTopRight    = '╮'
	frameBottomLeft  = '╰'
	frameBottomRight = '╯'
	frameHorizontal  = '─'
	frameVertical    = '│'
)

// Screen is a 2D colored character buffer.
// Game rendering sets glyphs and colors per cell; the platform layer turns the
// buffer into terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the whole screen as a Rect.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions and clears it.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with default-colored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// SetCell places a rune with a color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position, or space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, or a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a colored string starting at (x, y) and returns the number
// of columns used. Wide glyphs take two columns. Text past the edge is clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) int {
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetCell(col, y, r, c)
		if w == 2 {
			s.SetCell(col+1, y, 0, c)
		}
		col += w
	}
	return col - x
}

// DrawTextCentered draws text centered horizontally inside r at row y.
func (s *Screen) DrawTextCentered(r Rect, y int, text string, c Color) {
	x := r.X + (r.W-runewidth.StringWidth(text))/2
	s.DrawText(x, y, text, c)
}

// FillRect fills a rectangular area with the given rune and color.
func (s *Screen) FillRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, fill, c)
		}
	}
}

// DrawFrame draws a rounded box outline. A non-empty title is written into the
// top border, centered; use DrawText on row r.Y for left-aligned labels.
func (s *Screen) DrawFrame(r Rect, title string, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	s.SetCell(r.X, r.Y, frameTopLeft, c)
	s.SetCell(r.Right()-1, r.Y, frameTopRight, c)
	s.SetCell(r.X, r.Bottom()-1, frameBottomLeft, c)
	s.SetCell(r.Right()-1, r.Bottom()-1, frameBottomRight, c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetCell(x, r.Y, frameHorizontal, c)
		s.SetCell(x, r.Bottom()-1, frameHorizontal, c)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetCell(r.X, y, frameVertical, c)
		s.SetCell(r.Right()-1, y, frameVertical, c)
	}

	if title != "" && runewidth.StringWidth(title) <= r.W-2 {
		s.DrawTextCentered(r, r.Y, title, c)
	}
}

// String converts the screen buffer to plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Span is a run of adjacent cells sharing one color.
type Span struct {
	Text  string
	Color Color
}

// Spans splits row y into same-color runs. Trailing halves of wide glyphs are
// dropped, so each Text has the display width of its cells.
func (s *Screen) Spans(y int) []Span {
	if y < 0 || y >= s.height {
		return nil
	}

	var spans []Span
	var run strings.Builder
	row := s.cells[y]
	for x := 0; x < len(row); {
		color := row[x].Color
		run.Reset()
		for ; x < len(row) && row[x].Color == color; x++ {
			if row[x].Rune != 0 {
				run.WriteRune(row[x].Rune)
			}
		}
		spans = append(spans, Span{Text: run.String(), Color: color})
	}
	return spans
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, span := range s.Spans(y) {
		sb.WriteString(span.Text)
	}
	return sb.String()
}
