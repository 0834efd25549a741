package engine

import "github.com/rivo/uniseg"

// Print forwards a single character to the Dispatcher and, if it is
// graphical (≥ SPACE), records it for a later REP (spec.md §4.1.2). It
// does not clear last_printed_char on a non-graphical call. Unlike every
// other action, Print never consults the Dispatcher's return value or
// participates in the TTY fallthrough (spec.md §4.1.2 documents no
// failure/flush behavior for it) and always reports success.
func (e *Engine) Print(ch rune) bool {
	e.dispatcher.Print(ch)
	if ch >= ' ' {
		e.lastPrinted = ch
	}
	return true
}

// PrintString forwards a run of characters to the Dispatcher in one call.
// An empty string is a no-op success. last_printed_char is updated to the
// string's final grapheme cluster's rune only if that rune is graphical;
// clusters are used (via uniseg) so a combining sequence's base rune, not
// a trailing combining mark, is what a following REP would replay from a
// naive last-rune read. Like Print, it never consults the Dispatcher's
// return value or participates in the TTY fallthrough, so replaying it
// from inside REP can never trigger a spurious flush.
func (e *Engine) PrintString(s string) bool {
	if s == "" {
		return true
	}
	e.dispatcher.PrintString(s)
	if last := lastGraphemeRune(s); last >= ' ' {
		e.lastPrinted = last
	}
	return true
}

// lastGraphemeRune returns the first rune of the final grapheme cluster in
// s, or 0 if s is empty.
func lastGraphemeRune(s string) rune {
	var last rune
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		rs := gr.Runes()
		if len(rs) > 0 {
			last = rs[0]
		}
	}
	return last
}
