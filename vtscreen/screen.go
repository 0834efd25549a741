// Package vtscreen is a minimal, complete engine.Dispatcher implementation:
// a cell grid, cursor, color tables, clipboard, and hyperlink bookkeeping.
// It is grounded on the teacher's terminal package (framebuffer.go,
// row.go, color.go, links.go) but trimmed to what a Dispatcher needs to be
// exercised end to end by tests and the demo binary; it makes no attempt
// at full-fidelity rendering (no double buffering, no damage tracking).
//
// Screen is not safe for concurrent use; callers driving it from multiple
// goroutines must serialize their own access.
package vtscreen

import (
	"github.com/mattn/go-runewidth"

	"github.com/weiplanet/vtengine/engine"
)

// Cell is a single grid position: a display rune plus the SGR attributes
// currently in effect when it was written.
type Cell struct {
	Rune  rune
	Width int
	Attrs Attrs
}

// Attrs mirrors the SGR-relevant rendering state carried per cell,
// deliberately not modeling every attribute xterm supports (spec.md's
// Non-goals exclude "SGR color semantics beyond conveying option codes").
type Attrs struct {
	Foreground uint32
	Background uint32
	Bold       bool
	Underline  bool
	Reverse    bool
}

// Screen is a reference Dispatcher: a fixed-size cell grid with a cursor,
// scrolling margins, a 256-entry color table, a clipboard, and a
// hyperlink table.
type Screen struct {
	rows, cols int
	grid       [][]Cell

	cursorRow, cursorCol int
	savedRow, savedCol   int
	cursorStyle          int
	cursorColor          uint32

	marginTop, marginBottom int

	curAttrs Attrs

	colorTable        [256]uint32
	defaultForeground uint32
	defaultBackground uint32

	keypadApplication bool
	privateModes      map[int]bool

	clipboard []byte
	links     *linkTable
	openLink  string

	title string

	g          [4]string
	glLevel    int
	grLevel    int
	singleShift int

	tabStops map[int]bool
}

// New creates a Screen of the given size, all cells initialized blank.
func New(rows, cols int) *Screen {
	s := &Screen{
		rows:         rows,
		cols:         cols,
		marginTop:    1,
		marginBottom: rows,
		privateModes: map[int]bool{},
		links:        newLinkTable(),
		g:            [4]string{engine.ASCIICharset, engine.ASCIICharset, engine.ASCIICharset, engine.ASCIICharset},
		tabStops:     map[int]bool{},
	}
	s.grid = make([][]Cell, rows)
	for i := range s.grid {
		s.grid[i] = make([]Cell, cols)
	}
	for c := 8; c < cols; c += 8 {
		s.tabStops[c] = true
	}
	s.cursorRow, s.cursorCol = 0, 0
	return s
}

var _ engine.Dispatcher = (*Screen)(nil)

// Cell returns the cell at (row, col), both 0-based, or the zero Cell if
// out of bounds.
func (s *Screen) Cell(row, col int) Cell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return Cell{}
	}
	return s.grid[row][col]
}

// CursorPos returns the current 1-based (row, col), matching the
// coordinate space CursorPosition receives.
func (s *Screen) CursorPos() (row, col int) { return s.cursorRow + 1, s.cursorCol + 1 }

// Rows returns the grid's row count.
func (s *Screen) Rows() int { return s.rows }

// Cols returns the grid's column count.
func (s *Screen) Cols() int { return s.cols }

// Title returns the last title SetWindowTitle installed.
func (s *Screen) Title() string { return s.title }

// Clipboard returns the last content SetClipboard installed.
func (s *Screen) Clipboard() []byte { return s.clipboard }

func (s *Screen) clampCol() {
	if s.cursorCol < 0 {
		s.cursorCol = 0
	}
	if s.cursorCol >= s.cols {
		s.cursorCol = s.cols - 1
	}
}

func (s *Screen) clampRow() {
	if s.cursorRow < 0 {
		s.cursorRow = 0
	}
	if s.cursorRow >= s.rows {
		s.cursorRow = s.rows - 1
	}
}

func (s *Screen) putRune(r rune) {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		w = 1
	}
	if s.cursorCol >= s.cols {
		s.cursorCol = 0
		s.newline()
	}
	s.grid[s.cursorRow][s.cursorCol] = Cell{Rune: r, Width: w, Attrs: s.curAttrs}
	s.cursorCol += w
}

func (s *Screen) newline() {
	if s.cursorRow == s.marginBottom-1 {
		s.scrollUp(1)
		return
	}
	s.cursorRow++
	s.clampRow()
}

func (s *Screen) scrollUp(n int) {
	top, bottom := s.marginTop-1, s.marginBottom
	for i := 0; i < n; i++ {
		copy(s.grid[top:bottom-1], s.grid[top+1:bottom])
		s.grid[bottom-1] = make([]Cell, s.cols)
	}
}

func (s *Screen) scrollDown(n int) {
	top, bottom := s.marginTop-1, s.marginBottom
	for i := 0; i < n; i++ {
		copy(s.grid[top+1:bottom], s.grid[top:bottom-1])
		s.grid[top] = make([]Cell, s.cols)
	}
}
