package engine

import "github.com/weiplanet/vtengine/vtid"

// EscDispatch dispatches a simple escape sequence (spec.md §4.1.3).
func (e *Engine) EscDispatch(id vtid.ID) bool {
	defer e.clearLastPrinted()

	if id.Intermediate != 0 {
		return e.resolve(e.escDispatchIntermediate(id))
	}

	var ok bool
	switch id {
	case vtid.EscST:
		ok = true
	case vtid.EscDECSC:
		ok = e.dispatcher.CursorSaveState()
	case vtid.EscDECRC:
		ok = e.dispatcher.CursorRestoreState()
	case vtid.EscKeypadApp:
		ok = e.dispatcher.SetKeypadMode(true)
	case vtid.EscKeypadNum:
		ok = e.dispatcher.SetKeypadMode(false)
	case vtid.EscNEL:
		ok = e.dispatcher.LineFeed(LineFeedWithReturn)
	case vtid.EscIND:
		ok = e.dispatcher.LineFeed(LineFeedWithoutReturn)
	case vtid.EscRI:
		ok = e.dispatcher.ReverseLineFeed()
	case vtid.EscHTS:
		ok = e.dispatcher.HorizontalTabSet()
	case vtid.EscRIS:
		ok = e.dispatcher.HardReset()
	case vtid.EscSS2:
		ok = e.dispatcher.SingleShift(2)
	case vtid.EscSS3:
		ok = e.dispatcher.SingleShift(3)
	case vtid.EscLS2:
		ok = e.dispatcher.LockingShift(2)
	case vtid.EscLS3:
		ok = e.dispatcher.LockingShift(3)
	case vtid.EscLS1R:
		ok = e.dispatcher.LockingShiftRight(1)
	case vtid.EscLS2R:
		ok = e.dispatcher.LockingShiftRight(2)
	case vtid.EscLS3R:
		ok = e.dispatcher.LockingShiftRight(3)
	default:
		ok = false
	}
	return e.resolve(ok)
}

// escDispatchIntermediate handles the ids that carry a collected
// intermediate byte: DECALN and the charset designations, keyed on the
// intermediate with the designator byte carried in id.Final (spec.md
// §4.1.3).
func (e *Engine) escDispatchIntermediate(id vtid.ID) bool {
	if id == vtid.EscDECALN {
		return e.dispatcher.ScreenAlignmentPattern()
	}

	rest, hasRest := charsetDesignator(string(id.Final))
	if !hasRest {
		return false
	}

	if id.Intermediate == vtid.IntermCodingSystem {
		return e.dispatcher.DesignateCodingSystem(rest)
	}

	if g, ok := gLevel(id.Intermediate); ok {
		if is96Charset(id.Intermediate) {
			return e.dispatcher.Designate96Charset(g, rest)
		}
		return e.dispatcher.Designate94Charset(g, rest)
	}

	return false
}
