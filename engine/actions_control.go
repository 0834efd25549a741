package engine

import "github.com/weiplanet/vtengine/vtid"

// Execute interprets one C0 control character (spec.md §4.1.1). It always
// returns true: the operations it performs are unconditional bell rings,
// motions, and shifts that this engine never rejects.
func (e *Engine) Execute(ch byte) bool {
	defer e.clearLastPrinted()

	switch ch {
	case vtid.NUL:
		// Swallowed; a stray NUL never reaches the Dispatcher.
	case vtid.BEL:
		e.dispatcher.WarningBell()
		if e.tty != nil && e.flush != nil {
			e.flush()
		}
	case vtid.BS:
		e.dispatcher.CursorBackward(1)
	case vtid.HT:
		e.dispatcher.ForwardTab(1)
	case vtid.LF, vtid.VT, vtid.FF:
		e.dispatcher.LineFeed(LineFeedDependsOnMode)
	case vtid.CR:
		e.dispatcher.CarriageReturn()
	case vtid.SO:
		e.dispatcher.LockingShift(1)
	case vtid.SI:
		e.dispatcher.LockingShift(0)
	default:
		e.dispatcher.Print(rune(ch))
	}
	return true
}

// ExecuteFromEscape behaves identically to Execute; the engine does not
// distinguish the escape-prefixed case (spec.md §4.1.1).
func (e *Engine) ExecuteFromEscape(ch byte) bool {
	return e.Execute(ch)
}

// Ss3Dispatch always fails: this engine recognizes no SS3-prefixed
// sequences (spec.md §4.1.7). Unlike the other dispatch methods, it does
// not participate in the fallthrough bridge; the specification names it
// as an unconditional false with no flush mention.
func (e *Engine) Ss3Dispatch(id vtid.ID) bool {
	e.clearLastPrinted()
	return false
}

// Clear and Ignore are no-ops that always succeed. They deliberately do
// not touch last_printed_char, so REP can follow an ignored byte
// (spec.md §4.1.8).
func (e *Engine) Clear() bool  { return true }
func (e *Engine) Ignore() bool { return true }
