// Package engine implements the output state machine of a terminal
// emulator: it turns already-tokenized VT100/VT220/VT52/xterm-OSC
// sequences into calls on a Dispatcher, the interface that owns the
// actual screen, cursor, and color state.
//
// The Engine is fed by an external lower lexer through a fixed set of
// action methods (Execute, Print, PrintString, EscDispatch, CsiDispatch,
// OscDispatch, Vt52EscDispatch, Ss3Dispatch, Clear, Ignore). It performs
// no lexing of its own; vtid and vtlex supply the tokens it consumes.
package engine
