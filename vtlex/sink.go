// Package vtlex is the byte-level lexer/state machine that drives an
// engine.Engine (or any other Sink): the collaborator spec.md places out
// of scope, specified only by its contract with the Engine.
//
// It is grounded on the classic VT500-series parser state diagram, in the
// same shape github.com/ericwq/aprilsh's parser package uses (ground,
// escape, csiEntry, csiParam, csiIntermediate, csiIgnore, oscString,
// dcsEntry/.../dcsIgnore, plus the "anywhere" global transitions),
// extended here with a VT52 mode the diagram itself does not model.
package vtlex

import "github.com/weiplanet/vtengine/vtid"

// Sink is the contract the lexer drives. engine.Engine implements it.
type Sink interface {
	Execute(ch byte) bool
	ExecuteFromEscape(ch byte) bool
	Print(ch rune) bool
	PrintString(s string) bool
	EscDispatch(id vtid.ID) bool
	CsiDispatch(id vtid.ID, params []int) bool
	OscDispatch(terminator byte, code int, payload string) bool
	Vt52EscDispatch(id vtid.Vt52, params []byte) bool
	Clear() bool
	Ignore() bool
}

// Config exposes the static traits the lexer needs from its Sink, mirroring
// spec.md §4.2's four engine configuration predicates.
type Config interface {
	ParseControlSequenceAfterSs3() bool
	FlushAtEndOfString() bool
	DispatchControlCharsFromEscape() bool
	DispatchIntermediatesFromEscape() bool
}
