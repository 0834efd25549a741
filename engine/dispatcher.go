package engine

// Dispatcher is the capability set the Engine drives (spec.md §6). Every
// method reports success as a plain bool; the Engine never inspects why a
// call failed, only whether it did (spec.md §7).
//
// A Dispatcher implementation owns cursor state, the cell grid, the color
// tables, the clipboard, and hyperlink bookkeeping. The Engine holds it by
// reference for the lifetime of the Engine (spec.md §3) and never retains
// state of its own beyond last_printed_char and the sgrBuf field.
type Dispatcher interface {
	// Cursor motion.
	CursorUp(n int) bool
	CursorDown(n int) bool
	CursorForward(n int) bool
	CursorBackward(n int) bool
	CursorNextLine(n int) bool
	CursorPrevLine(n int) bool
	CursorHorizontalPositionAbsolute(col int) bool
	VerticalLinePositionAbsolute(row int) bool
	HorizontalPositionRelative(n int) bool
	VerticalPositionRelative(n int) bool
	CursorPosition(row, col int) bool
	CursorSaveState() bool
	CursorRestoreState() bool

	// Editing.
	InsertCharacter(n int) bool
	DeleteCharacter(n int) bool
	EraseCharacters(n int) bool
	InsertLine(n int) bool
	DeleteLine(n int) bool
	EraseInDisplay(kind EraseKind) bool
	EraseInLine(kind EraseKind) bool
	ScrollUp(n int) bool
	ScrollDown(n int) bool

	// Tabs.
	ForwardTab(n int) bool
	BackwardsTab(n int) bool
	HorizontalTabSet() bool
	TabClear(kind int) bool

	// Modes.
	SetPrivateModes(codes []int) bool
	ResetPrivateModes(codes []int) bool
	SetKeypadMode(application bool) bool
	SetTopBottomScrollingMargins(top, bottom int) bool

	// Rendering.
	SetGraphicsRendition(opts []int) bool
	SetCursorStyle(style int) bool
	SetColorTableEntry(index int, rgb uint32) bool
	SetDefaultForeground(rgb uint32) bool
	SetDefaultBackground(rgb uint32) bool
	SetCursorColor(rgb uint32) bool

	// Reports.
	DeviceAttributes() bool
	SecondaryDeviceAttributes() bool
	TertiaryDeviceAttributes() bool
	Vt52DeviceAttributes() bool
	DeviceStatusReport(kind DeviceStatusKind) bool

	// Character sets.
	DesignateCodingSystem(rest string) bool
	Designate94Charset(g int, rest string) bool
	Designate96Charset(g int, rest string) bool
	LockingShift(g int) bool
	LockingShiftRight(g int) bool
	SingleShift(g int) bool

	// Text flow.
	Print(ch rune) bool
	PrintString(s string) bool
	CarriageReturn() bool
	LineFeed(mode LineFeedMode) bool
	ReverseLineFeed() bool

	// Misc.
	WarningBell() bool
	HardReset() bool
	SoftReset() bool
	ScreenAlignmentPattern() bool
	WindowManipulation(fn WindowManipFunc, args []int) bool
	SetWindowTitle(title string) bool
	SetClipboard(content []byte) bool
	AddHyperlink(uri, id string) bool
	EndHyperlink() bool
}

// TtyConnection is the upstream terminal output sink the Engine forwards
// unrecognized sequences to when it is acting as an intermediary
// (spec.md §6, §7).
type TtyConnection interface {
	WriteTerminal(text string) bool
}
