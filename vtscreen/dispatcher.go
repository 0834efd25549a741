package vtscreen

import (
	"github.com/weiplanet/vtengine/engine"
)

// Cursor motion.

func (s *Screen) CursorUp(n int) bool {
	s.cursorRow -= n
	if s.cursorRow < s.marginTop-1 {
		s.cursorRow = s.marginTop - 1
	}
	return true
}

func (s *Screen) CursorDown(n int) bool {
	s.cursorRow += n
	if s.cursorRow > s.marginBottom-1 {
		s.cursorRow = s.marginBottom - 1
	}
	return true
}

func (s *Screen) CursorForward(n int) bool {
	s.cursorCol += n
	s.clampCol()
	return true
}

func (s *Screen) CursorBackward(n int) bool {
	s.cursorCol -= n
	s.clampCol()
	return true
}

func (s *Screen) CursorNextLine(n int) bool {
	s.cursorCol = 0
	s.cursorRow += n
	s.clampRow()
	return true
}

func (s *Screen) CursorPrevLine(n int) bool {
	s.cursorCol = 0
	s.cursorRow -= n
	s.clampRow()
	return true
}

func (s *Screen) CursorHorizontalPositionAbsolute(col int) bool {
	s.cursorCol = col - 1
	s.clampCol()
	return true
}

func (s *Screen) VerticalLinePositionAbsolute(row int) bool {
	s.cursorRow = row - 1
	s.clampRow()
	return true
}

func (s *Screen) HorizontalPositionRelative(n int) bool { return s.CursorForward(n) }
func (s *Screen) VerticalPositionRelative(n int) bool   { return s.CursorDown(n) }

func (s *Screen) CursorPosition(row, col int) bool {
	s.cursorRow, s.cursorCol = row-1, col-1
	s.clampRow()
	s.clampCol()
	return true
}

func (s *Screen) CursorSaveState() bool {
	s.savedRow, s.savedCol = s.cursorRow, s.cursorCol
	return true
}

func (s *Screen) CursorRestoreState() bool {
	s.cursorRow, s.cursorCol = s.savedRow, s.savedCol
	s.clampRow()
	s.clampCol()
	return true
}

// Editing.

func (s *Screen) InsertCharacter(n int) bool {
	row := s.grid[s.cursorRow]
	for i := 0; i < n; i++ {
		if s.cursorCol >= len(row) {
			break
		}
		copy(row[s.cursorCol+1:], row[s.cursorCol:len(row)-1])
		row[s.cursorCol] = Cell{Attrs: s.curAttrs}
	}
	return true
}

func (s *Screen) DeleteCharacter(n int) bool {
	row := s.grid[s.cursorRow]
	for i := 0; i < n; i++ {
		if s.cursorCol >= len(row) {
			break
		}
		copy(row[s.cursorCol:len(row)-1], row[s.cursorCol+1:])
		row[len(row)-1] = Cell{Attrs: s.curAttrs}
	}
	return true
}

func (s *Screen) EraseCharacters(n int) bool {
	row := s.grid[s.cursorRow]
	for i := 0; i < n && s.cursorCol+i < len(row); i++ {
		row[s.cursorCol+i] = Cell{Attrs: s.curAttrs}
	}
	return true
}

func (s *Screen) InsertLine(n int) bool {
	if s.cursorRow < s.marginTop-1 || s.cursorRow >= s.marginBottom {
		return true
	}
	top, bottom := s.cursorRow, s.marginBottom
	for i := 0; i < n; i++ {
		copy(s.grid[top+1:bottom], s.grid[top:bottom-1])
		s.grid[top] = make([]Cell, s.cols)
	}
	return true
}

func (s *Screen) DeleteLine(n int) bool {
	if s.cursorRow < s.marginTop-1 || s.cursorRow >= s.marginBottom {
		return true
	}
	top, bottom := s.cursorRow, s.marginBottom
	for i := 0; i < n; i++ {
		copy(s.grid[top:bottom-1], s.grid[top+1:bottom])
		s.grid[bottom-1] = make([]Cell, s.cols)
	}
	return true
}

func (s *Screen) EraseInDisplay(kind engine.EraseKind) bool {
	switch kind {
	case engine.EraseToEnd:
		s.eraseInLineFrom(s.cursorRow, s.cursorCol, s.cols)
		for r := s.cursorRow + 1; r < s.rows; r++ {
			s.grid[r] = make([]Cell, s.cols)
		}
	case engine.EraseFromBeginning:
		s.eraseInLineFrom(s.cursorRow, 0, s.cursorCol+1)
		for r := 0; r < s.cursorRow; r++ {
			s.grid[r] = make([]Cell, s.cols)
		}
	case engine.EraseAll, engine.EraseScrollback:
		for r := 0; r < s.rows; r++ {
			s.grid[r] = make([]Cell, s.cols)
		}
	}
	return true
}

func (s *Screen) EraseInLine(kind engine.EraseKind) bool {
	switch kind {
	case engine.EraseToEnd:
		s.eraseInLineFrom(s.cursorRow, s.cursorCol, s.cols)
	case engine.EraseFromBeginning:
		s.eraseInLineFrom(s.cursorRow, 0, s.cursorCol+1)
	case engine.EraseAll, engine.EraseScrollback:
		s.eraseInLineFrom(s.cursorRow, 0, s.cols)
	}
	return true
}

func (s *Screen) eraseInLineFrom(row, from, to int) {
	for c := from; c < to && c < s.cols; c++ {
		s.grid[row][c] = Cell{Attrs: s.curAttrs}
	}
}

func (s *Screen) ScrollUp(n int) bool   { s.scrollUp(n); return true }
func (s *Screen) ScrollDown(n int) bool { s.scrollDown(n); return true }

// Tabs.

func (s *Screen) ForwardTab(n int) bool {
	for i := 0; i < n; i++ {
		next := s.cols - 1
		for c := s.cursorCol + 1; c < s.cols; c++ {
			if s.tabStops[c] {
				next = c
				break
			}
		}
		s.cursorCol = next
	}
	s.clampCol()
	return true
}

func (s *Screen) BackwardsTab(n int) bool {
	for i := 0; i < n; i++ {
		prev := 0
		for c := s.cursorCol - 1; c > 0; c-- {
			if s.tabStops[c] {
				prev = c
				break
			}
		}
		s.cursorCol = prev
	}
	s.clampCol()
	return true
}

func (s *Screen) HorizontalTabSet() bool {
	s.tabStops[s.cursorCol] = true
	return true
}

func (s *Screen) TabClear(kind int) bool {
	switch kind {
	case 3:
		s.tabStops = map[int]bool{}
	default:
		delete(s.tabStops, s.cursorCol)
	}
	return true
}

// Modes.

func (s *Screen) SetPrivateModes(codes []int) bool {
	for _, c := range codes {
		s.privateModes[c] = true
	}
	return true
}

func (s *Screen) ResetPrivateModes(codes []int) bool {
	for _, c := range codes {
		s.privateModes[c] = false
	}
	return true
}

func (s *Screen) SetKeypadMode(application bool) bool {
	s.keypadApplication = application
	return true
}

func (s *Screen) SetTopBottomScrollingMargins(top, bottom int) bool {
	if top == 0 {
		top = 1
	}
	if bottom == 0 {
		bottom = s.rows
	}
	s.marginTop, s.marginBottom = top, bottom
	s.cursorRow, s.cursorCol = 0, 0
	return true
}

// Rendering.

func (s *Screen) SetGraphicsRendition(opts []int) bool {
	for _, o := range opts {
		switch o {
		case 0:
			s.curAttrs = Attrs{}
		case 1:
			s.curAttrs.Bold = true
		case 4:
			s.curAttrs.Underline = true
		case 7:
			s.curAttrs.Reverse = true
		case 22:
			s.curAttrs.Bold = false
		case 24:
			s.curAttrs.Underline = false
		case 27:
			s.curAttrs.Reverse = false
		}
	}
	return true
}

func (s *Screen) SetCursorStyle(style int) bool {
	s.cursorStyle = style
	return true
}

func (s *Screen) SetColorTableEntry(index int, rgb uint32) bool {
	if index < 0 || index >= len(s.colorTable) {
		return false
	}
	s.colorTable[index] = rgb
	return true
}

func (s *Screen) SetDefaultForeground(rgb uint32) bool {
	s.defaultForeground = rgb
	return true
}

func (s *Screen) SetDefaultBackground(rgb uint32) bool {
	s.defaultBackground = rgb
	return true
}

func (s *Screen) SetCursorColor(rgb uint32) bool {
	s.cursorColor = rgb
	return true
}

// Reports.

func (s *Screen) DeviceAttributes() bool          { return true }
func (s *Screen) SecondaryDeviceAttributes() bool { return true }
func (s *Screen) TertiaryDeviceAttributes() bool  { return true }
func (s *Screen) Vt52DeviceAttributes() bool      { return true }
func (s *Screen) DeviceStatusReport(kind engine.DeviceStatusKind) bool { return true }

// Character sets.

func (s *Screen) DesignateCodingSystem(rest string) bool { return true }

func (s *Screen) Designate94Charset(g int, rest string) bool {
	if g < 0 || g > 3 {
		return false
	}
	s.g[g] = rest
	return true
}

func (s *Screen) Designate96Charset(g int, rest string) bool {
	if g < 0 || g > 3 {
		return false
	}
	s.g[g] = rest
	return true
}

func (s *Screen) LockingShift(g int) bool {
	if g < 0 || g > 3 {
		return false
	}
	s.glLevel = g
	return true
}

func (s *Screen) LockingShiftRight(g int) bool {
	if g < 0 || g > 3 {
		return false
	}
	s.grLevel = g
	return true
}

func (s *Screen) SingleShift(g int) bool {
	s.singleShift = g
	return true
}

// Text flow.

func (s *Screen) Print(ch rune) bool {
	s.putRune(ch)
	return true
}

func (s *Screen) PrintString(str string) bool {
	for _, r := range str {
		s.putRune(r)
	}
	return true
}

func (s *Screen) CarriageReturn() bool {
	s.cursorCol = 0
	return true
}

func (s *Screen) LineFeed(mode engine.LineFeedMode) bool {
	if mode == engine.LineFeedWithReturn {
		s.cursorCol = 0
	}
	s.newline()
	return true
}

func (s *Screen) ReverseLineFeed() bool {
	if s.cursorRow == s.marginTop-1 {
		s.scrollDown(1)
		return true
	}
	s.cursorRow--
	s.clampRow()
	return true
}

// Misc.

func (s *Screen) WarningBell() bool { return true }

func (s *Screen) HardReset() bool {
	*s = *New(s.rows, s.cols)
	return true
}

func (s *Screen) SoftReset() bool {
	s.marginTop, s.marginBottom = 1, s.rows
	s.curAttrs = Attrs{}
	s.cursorRow, s.cursorCol = 0, 0
	return true
}

func (s *Screen) ScreenAlignmentPattern() bool {
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			s.grid[r][c] = Cell{Rune: 'E', Width: 1}
		}
	}
	return true
}

func (s *Screen) WindowManipulation(fn engine.WindowManipFunc, args []int) bool {
	switch fn {
	case engine.WindowRefresh:
		return true
	case engine.WindowResizeChars:
		if len(args) != 2 {
			return false
		}
		s.Resize(args[0], args[1])
		return true
	}
	return false
}

func (s *Screen) SetWindowTitle(title string) bool {
	s.title = title
	return true
}

func (s *Screen) SetClipboard(content []byte) bool {
	s.clipboard = append([]byte(nil), content...)
	return true
}

func (s *Screen) AddHyperlink(uri, id string) bool {
	s.links.add(uri, id)
	s.openLink = id
	return true
}

func (s *Screen) EndHyperlink() bool {
	s.openLink = ""
	return true
}

// Resize replaces the grid with one of the given dimensions, preserving
// as much of the existing content as fits in the new bounds.
func (s *Screen) Resize(rows, cols int) {
	next := make([][]Cell, rows)
	for r := range next {
		next[r] = make([]Cell, cols)
		if r < len(s.grid) {
			copy(next[r], s.grid[r])
		}
	}
	s.grid = next
	s.rows, s.cols = rows, cols
	s.marginBottom = rows
	s.clampRow()
	s.clampCol()
}
