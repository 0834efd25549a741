package engine

import "github.com/weiplanet/vtengine/vtid"

// Vt52EscDispatch dispatches a VT52 sequence (spec.md §4.1.4).
// DirectCursorAddress reads two ASCII-biased byte parameters out of
// params, where a value of SPACE encodes row/column 1. Unlike
// EscDispatch/CsiDispatch/OscDispatch, it never joins the TTY fallthrough:
// spec.md §4.1.4 carries no flush-participation sentence, matching
// Ss3Dispatch's carve-out (see actions_control.go).
func (e *Engine) Vt52EscDispatch(id vtid.Vt52, params []byte) bool {
	defer e.clearLastPrinted()

	var ok bool
	switch id {
	case vtid.Vt52CursorUp:
		ok = e.dispatcher.CursorUp(1)
	case vtid.Vt52CursorDown:
		ok = e.dispatcher.CursorDown(1)
	case vtid.Vt52CursorRight:
		ok = e.dispatcher.CursorForward(1)
	case vtid.Vt52CursorLeft:
		ok = e.dispatcher.CursorBackward(1)
	case vtid.Vt52EnterGraphicsMode:
		ok = e.dispatcher.Designate94Charset(0, DecSpecialGraphics)
	case vtid.Vt52ExitGraphicsMode:
		ok = e.dispatcher.Designate94Charset(0, ASCIICharset)
	case vtid.Vt52CursorToHome:
		ok = e.dispatcher.CursorPosition(1, 1)
	case vtid.Vt52ReverseLineFeed:
		ok = e.dispatcher.ReverseLineFeed()
	case vtid.Vt52EraseToEndOfScreen:
		ok = e.dispatcher.EraseInDisplay(EraseToEnd)
	case vtid.Vt52EraseToEndOfLine:
		ok = e.dispatcher.EraseInLine(EraseToEnd)
	case vtid.Vt52DirectCursorAddress:
		if len(params) != 2 {
			ok = false
			break
		}
		row := int(params[0]) - int(vtid.SP) + 1
		col := int(params[1]) - int(vtid.SP) + 1
		ok = e.dispatcher.CursorPosition(row, col)
	case vtid.Vt52Identify:
		ok = e.dispatcher.Vt52DeviceAttributes()
	case vtid.Vt52EnterAlternateKeypad:
		ok = e.dispatcher.SetKeypadMode(true)
	case vtid.Vt52ExitAlternateKeypad:
		ok = e.dispatcher.SetKeypadMode(false)
	case vtid.Vt52ExitVt52Mode:
		ok = e.dispatcher.SetPrivateModes([]int{PrivateModeDECANM})
	default:
		ok = false
	}
	return ok
}
