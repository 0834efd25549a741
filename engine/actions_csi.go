package engine

import "github.com/weiplanet/vtengine/vtid"

// CsiDispatch dispatches a CSI sequence (spec.md §4.1.5): parameter
// extraction, then the paired Dispatcher call, then finalization.
func (e *Engine) CsiDispatch(id vtid.ID, params []int) bool {
	defer e.clearLastPrinted()

	ok, handled := e.csiDispatchSpecial(id, params)
	if !handled {
		ok = e.csiDispatchStandard(id, params)
	}
	return e.resolve(ok)
}

// csiDispatchSpecial handles the three ids whose dispatch does not follow
// the plain extract-then-call shape (spec.md §4.1.5 Phase B notes).
func (e *Engine) csiDispatchSpecial(id vtid.ID, params []int) (ok bool, handled bool) {
	switch id {
	case vtid.CsiREP:
		return e.repeatLastPrinted(params), true
	case vtid.CsiDECSTR:
		return e.dispatcher.SoftReset(), true
	case vtid.CsiDTTERM:
		fn, args, ok := extractWindowManip(params)
		if !ok {
			return false, true
		}
		return e.dispatcher.WindowManipulation(fn, args), true
	}
	return false, false
}

// repeatLastPrinted implements REP entirely inside the Engine (spec.md
// §4.1.5). Extraction runs before anything else, so a malformed repeat
// count (more than one parameter) fails regardless of whether there is a
// preceding graphical print to replay; only once extraction succeeds does
// an absent last_printed_char turn REP into a no-op success.
func (e *Engine) repeatLastPrinted(params []int) bool {
	n, ok := extractDistance(params)
	if !ok {
		return false
	}
	if e.lastPrinted == 0 {
		return true
	}
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = e.lastPrinted
	}
	e.PrintString(string(runes))
	return true
}

// csiDispatchStandard covers every id that follows extract-then-call. Every
// extractor here except extractGraphicsOptions (SGR) can reject its
// parameters (spec.md §8 testable property #3: "more than one element
// yields failure unless the id explicitly allows it"), so each of those
// cases threads its extractor's ok through rather than assuming success.
func (e *Engine) csiDispatchStandard(id vtid.ID, params []int) bool {
	switch id {
	case vtid.CsiCUU:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.CursorUp(n)
	case vtid.CsiCUD:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.CursorDown(n)
	case vtid.CsiCUF:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.CursorForward(n)
	case vtid.CsiCUB:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.CursorBackward(n)
	case vtid.CsiCNL:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.CursorNextLine(n)
	case vtid.CsiCPL:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.CursorPrevLine(n)
	case vtid.CsiCHA:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.CursorHorizontalPositionAbsolute(n)
	case vtid.CsiHPA:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.CursorHorizontalPositionAbsolute(n)
	case vtid.CsiVPA:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.VerticalLinePositionAbsolute(n)
	case vtid.CsiHPR:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.HorizontalPositionRelative(n)
	case vtid.CsiVPR:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.VerticalPositionRelative(n)
	case vtid.CsiICH:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.InsertCharacter(n)
	case vtid.CsiDCH:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.DeleteCharacter(n)
	case vtid.CsiECH:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.EraseCharacters(n)
	case vtid.CsiCUP, vtid.CsiHVP:
		row, col, ok := extractCoordinates(params)
		return ok && e.dispatcher.CursorPosition(row, col)
	case vtid.CsiDECSTBM:
		top, bottom, ok := extractMargins(params)
		if !ok {
			return false
		}
		return e.dispatcher.SetTopBottomScrollingMargins(top, bottom)
	case vtid.CsiED:
		kind, ok := extractEraseKind(params)
		return ok && e.dispatcher.EraseInDisplay(kind)
	case vtid.CsiEL:
		kind, ok := extractEraseKind(params)
		return ok && e.dispatcher.EraseInLine(kind)
	case vtid.CsiDECSET:
		codes := extractPrivateModes(params)
		if codes == nil {
			return false
		}
		return e.dispatcher.SetPrivateModes(codes)
	case vtid.CsiDECRST:
		codes := extractPrivateModes(params)
		if codes == nil {
			return false
		}
		return e.dispatcher.ResetPrivateModes(codes)
	case vtid.CsiSGR:
		return e.dispatcher.SetGraphicsRendition(extractGraphicsOptions(params))
	case vtid.CsiDSR:
		kind, ok := extractDeviceStatusKind(params)
		return ok && e.dispatcher.DeviceStatusReport(kind)
	case vtid.CsiDA1:
		if !extractDA(params) {
			return false
		}
		return e.dispatcher.DeviceAttributes()
	case vtid.CsiDA2:
		if !extractDA(params) {
			return false
		}
		return e.dispatcher.SecondaryDeviceAttributes()
	case vtid.CsiDA3:
		if !extractDA(params) {
			return false
		}
		return e.dispatcher.TertiaryDeviceAttributes()
	case vtid.CsiSU:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.ScrollUp(n)
	case vtid.CsiSD:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.ScrollDown(n)
	case vtid.CsiIL:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.InsertLine(n)
	case vtid.CsiDL:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.DeleteLine(n)
	case vtid.CsiANSISYSSC:
		if !extractEmpty(params) {
			return false
		}
		return e.dispatcher.CursorSaveState()
	case vtid.CsiANSISYSRC:
		if !extractEmpty(params) {
			return false
		}
		return e.dispatcher.CursorRestoreState()
	case vtid.CsiCHT:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.ForwardTab(n)
	case vtid.CsiCBT:
		n, ok := extractDistance(params)
		return ok && e.dispatcher.BackwardsTab(n)
	case vtid.CsiTBC:
		kind, ok := extractClearType(params)
		return ok && e.dispatcher.TabClear(kind)
	case vtid.CsiDECSCUSR:
		style, ok := extractCursorStyle(params)
		return ok && e.dispatcher.SetCursorStyle(style)
	default:
		return false
	}
}
