package engine

import "github.com/weiplanet/vtengine/vtid"

// paramMax bounds every numeric CSI parameter after clamping, mirroring
// the aprilsh dispatcher's own ceiling for a stray or malicious digit run.
const paramMax = 65535

// clampParam clamps a raw parsed parameter into [0, paramMax].
func clampParam(n int) int {
	if n < 0 {
		return 0
	}
	if n > paramMax {
		return paramMax
	}
	return n
}

// extractDistance reads a single count parameter that defaults to 1 and is
// promoted to 1 whenever it is absent or given as 0 (spec.md §4.2.1). It is
// used by every cursor-motion and edit action that takes one count. More
// than one parameter is rejected (spec.md §8 testable property #3).
func extractDistance(params []int) (int, bool) {
	if len(params) > 1 {
		return 0, false
	}
	if len(params) == 0 || params[0] <= 0 {
		return 1, true
	}
	return clampParam(params[0]), true
}

// extractCoordinates reads the two-parameter (row, col) pair CUP/HVP take,
// each independently defaulting to 1 (spec.md §4.2.1). More than two
// parameters is rejected (spec.md §8 testable property #3).
func extractCoordinates(params []int) (row, col int, ok bool) {
	if len(params) > 2 {
		return 0, 0, false
	}
	row, col = 1, 1
	if len(params) > 0 && params[0] > 0 {
		row = clampParam(params[0])
	}
	if len(params) > 1 && params[1] > 0 {
		col = clampParam(params[1])
	}
	return row, col, true
}

// extractMargins reads the DECSTBM (top, bottom) pair, both defaulting to
// 0 (spec.md §4.1.5) for the Dispatcher to interpret as "unset". ok is
// false when 0 < bottom < top, the one combination DECSTBM rejects, or
// when more than two parameters are given (spec.md §8 testable property
// #3).
func extractMargins(params []int) (top, bottom int, ok bool) {
	if len(params) > 2 {
		return 0, 0, false
	}
	if len(params) > 0 && params[0] > 0 {
		top = clampParam(params[0])
	}
	if len(params) > 1 && params[1] > 0 {
		bottom = clampParam(params[1])
	}
	if bottom > 0 && bottom < top {
		return 0, 0, false
	}
	return top, bottom, true
}

// extractEraseKind maps the single ED/EL parameter onto an EraseKind,
// defaulting an absent parameter to EraseToEnd (spec.md §4.2.1). More than
// one parameter, or a value outside {0,1,2,3}, is rejected (spec.md §8
// testable property #3; the literal ESC [ 9 J scenario in spec.md §8 must
// fail rather than fall back to EraseToEnd).
// A value of 3 (EraseScrollback) is only meaningful for ED; EL callers
// simply never see it dispatched with that kind by real terminals, but the
// mapping itself does not discriminate between the two operations.
func extractEraseKind(params []int) (EraseKind, bool) {
	if len(params) == 0 {
		return EraseToEnd, true
	}
	if len(params) > 1 {
		return EraseToEnd, false
	}
	switch params[0] {
	case 0:
		return EraseToEnd, true
	case 1:
		return EraseFromBeginning, true
	case 2:
		return EraseAll, true
	case 3:
		return EraseScrollback, true
	default:
		return EraseToEnd, false
	}
}

// extractPrivateModes copies the raw parameter list unchanged; DECSET and
// DECRST pass every mode code straight through to the Dispatcher, which
// owns the meaning of each code (spec.md §4.2.1).
func extractPrivateModes(params []int) []int {
	if len(params) == 0 {
		return nil
	}
	out := make([]int, len(params))
	copy(out, params)
	return out
}

// extractGraphicsOptions copies the raw SGR parameter list, substituting a
// single implicit 0 (reset) for an empty list (spec.md §4.2.1).
func extractGraphicsOptions(params []int) []int {
	if len(params) == 0 {
		return []int{0}
	}
	out := make([]int, len(params))
	copy(out, params)
	return out
}

// extractDeviceStatusKind maps the DSR parameter onto a DeviceStatusKind.
// Exactly one parameter is required; anything else, or a value other than
// DeviceStatusOS/DeviceStatusCPR, is rejected (spec.md §4.1.5: "status kind
// ∈ {OS, CPR}; other values rejected").
func extractDeviceStatusKind(params []int) (DeviceStatusKind, bool) {
	if len(params) != 1 {
		return 0, false
	}
	switch DeviceStatusKind(params[0]) {
	case DeviceStatusOS:
		return DeviceStatusOS, true
	case DeviceStatusCPR:
		return DeviceStatusCPR, true
	default:
		return 0, false
	}
}

// extractDA validates the DA/DA2/DA3 parameter list, which must be empty
// or the single value [0] (spec.md §4.1.5).
func extractDA(params []int) bool {
	return len(params) == 0 || (len(params) == 1 && params[0] == 0)
}

// extractEmpty validates the ANSISYSSC/ANSISYSRC parameter list, which
// must carry no parameters at all (spec.md §4.1.5).
func extractEmpty(params []int) bool {
	return len(params) == 0
}

// extractClearType reads the TBC parameter, defaulting an absent parameter
// to 0 (clear the tab stop at the current column). More than one parameter
// is rejected.
func extractClearType(params []int) (int, bool) {
	if len(params) > 1 {
		return 0, false
	}
	if len(params) == 0 || params[0] < 0 {
		return 0, true
	}
	return clampParam(params[0]), true
}

// extractCursorStyle reads the DECSCUSR parameter, defaulting an absent or
// zero parameter to 1 (blinking block), per spec.md §4.2.1. More than one
// parameter is rejected.
func extractCursorStyle(params []int) (int, bool) {
	if len(params) > 1 {
		return 0, false
	}
	if len(params) == 0 || params[0] <= 0 {
		return 1, true
	}
	return clampParam(params[0]), true
}

// extractWindowManip maps the dtterm window-manipulation Ps parameter onto
// the two functions this engine recognizes (RefreshWindow=7,
// ResizeWindowInCharacters=8), along with the remaining parameters as its
// argument list. An unrecognized Ps reports ok=false so the caller can fall
// through untouched.
func extractWindowManip(params []int) (fn WindowManipFunc, args []int, ok bool) {
	if len(params) == 0 {
		return 0, nil, false
	}
	switch params[0] {
	case 7:
		fn = WindowRefresh
	case 8:
		fn = WindowResizeChars
	default:
		return 0, nil, false
	}
	if len(params) > 1 {
		args = make([]int, len(params)-1)
		copy(args, params[1:])
	}
	return fn, args, true
}

// charsetDesignator reads the single designator byte that follows a
// charset-designation intermediate (spec.md §4.1.3). rest is the collected
// text following the intermediate; only its first byte matters.
func charsetDesignator(rest string) (string, bool) {
	if len(rest) == 0 {
		return "", false
	}
	return rest[:1], true
}

// gLevel maps a charset-designation intermediate byte to the G-set index
// it selects (G0-G3), for both the 94-charset and 96-charset families.
func gLevel(interm byte) (level int, ok bool) {
	switch interm {
	case vtid.Interm94Charset0:
		return 0, true
	case vtid.Interm94Charset1:
		return 1, true
	case vtid.Interm94Charset2:
		return 2, true
	case vtid.Interm94Charset3:
		return 3, true
	case vtid.Interm96Charset1:
		return 1, true
	case vtid.Interm96Charset2:
		return 2, true
	case vtid.Interm96Charset3:
		return 3, true
	}
	return 0, false
}

func is96Charset(interm byte) bool {
	switch interm {
	case vtid.Interm96Charset1, vtid.Interm96Charset2, vtid.Interm96Charset3:
		return true
	}
	return false
}
