package engine

// LineFeedMode selects how LineFeed should be interpreted by the
// Dispatcher, mirroring the C0/ESC actions that fold onto the same
// primitive (spec.md §4.1.1, §4.1.3).
type LineFeedMode int

const (
	// LineFeedDependsOnMode is used by the C0 LF/VT/FF controls, whose
	// return-to-column-0 behavior is governed by the Dispatcher's own
	// line-feed/new-line mode, not by the Engine.
	LineFeedDependsOnMode LineFeedMode = iota
	// LineFeedWithReturn is NEL (ESC E): always return to column 0.
	LineFeedWithReturn
	// LineFeedWithoutReturn is IND (ESC D): never return to column 0.
	LineFeedWithoutReturn
)

// EraseKind selects the extent of an ED/EL erase operation.
type EraseKind int

const (
	EraseToEnd EraseKind = iota
	EraseFromBeginning
	EraseAll
	EraseScrollback
)

// DeviceStatusKind selects which report DSR should produce.
type DeviceStatusKind int

const (
	DeviceStatusOS  DeviceStatusKind = 5
	DeviceStatusCPR DeviceStatusKind = 6
)

// WindowManipFunc enumerates the dtterm window-manipulation functions this
// engine recognizes; spec.md §4.1.5 accepts only these two.
type WindowManipFunc int

const (
	WindowRefresh WindowManipFunc = iota
	WindowResizeChars
)

// PrivateModeDECANM is the private mode code SetPrivateModes receives when
// VT52 mode exits back to ANSI mode (spec.md §4.1.4, ExitVt52Mode).
const PrivateModeDECANM = 2

// InvalidCursorColor is the sentinel RGB value OSC 112 asks the Dispatcher
// to set the cursor color to, signaling "no explicit color" (spec.md
// §4.1.6).
const InvalidCursorColor uint32 = 0xFFFFFFFF

// Vt52 charset designators used by the graphics-mode enter/exit sequences
// (spec.md §4.1.4).
const (
	DecSpecialGraphics = "0"
	ASCIICharset       = "B"
)
